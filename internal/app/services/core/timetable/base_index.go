package timetable

import (
	"time"

	"scolaris-service/internal/app/models"
)

type baseKey struct {
	day      time.Weekday
	start    models.ClockTime
	end      models.ClockTime
	entityID int64
}

// BaseScheduleIndex indexes recurring weekly entries for O(1) lookup by
// (day, time-range, class) and (day, time-range, teacher). It is a derived,
// disposable cache rebuilt per request, never the source of truth.
type BaseScheduleIndex struct {
	byClass   map[baseKey]*models.BaseScheduleEntry
	byTeacher map[baseKey]*models.BaseScheduleEntry
}

func NewBaseScheduleIndex(entries []models.BaseScheduleEntry) *BaseScheduleIndex {
	index := &BaseScheduleIndex{
		byClass:   make(map[baseKey]*models.BaseScheduleEntry, len(entries)),
		byTeacher: make(map[baseKey]*models.BaseScheduleEntry, len(entries)),
	}

	owned := make([]models.BaseScheduleEntry, len(entries))
	copy(owned, entries)

	for i := range owned {
		entry := &owned[i]
		classKey := baseKey{day: entry.Slot.Day, start: entry.Slot.Start, end: entry.Slot.End, entityID: entry.ClassID}
		teacherKey := baseKey{day: entry.Slot.Day, start: entry.Slot.Start, end: entry.Slot.End, entityID: entry.TeacherID}
		keepLowestID(index.byClass, classKey, entry)
		keepLowestID(index.byTeacher, teacherKey, entry)
	}
	return index
}

// keepLowestID makes duplicate entries for the same slot and scope resolve
// deterministically: the entry with the lowest id wins, independent of input
// order. Uniqueness itself is a write-time concern that lives elsewhere.
func keepLowestID(index map[baseKey]*models.BaseScheduleEntry, key baseKey, entry *models.BaseScheduleEntry) {
	current, ok := index[key]
	if !ok || entry.ID < current.ID {
		index[key] = entry
	}
}

// Lookup matches on exact day and exact time-range equality only; a request
// for an unknown time-range yields nil rather than a partial-overlap match.
func (index *BaseScheduleIndex) Lookup(day time.Weekday, start, end models.ClockTime, view View) *models.BaseScheduleEntry {
	key := baseKey{day: day, start: start, end: end}
	switch view.Kind {
	case ViewByClass:
		key.entityID = view.ClassID
		return index.byClass[key]
	case ViewByTeacher:
		key.entityID = view.TeacherID
		return index.byTeacher[key]
	default:
		return nil
	}
}
