package timetable

import (
	"time"

	"scolaris-service/internal/app/models"
)

type exceptionKey struct {
	date  models.Date
	day   time.Weekday
	start models.ClockTime
	end   models.ClockTime
}

// ExceptionIndex indexes dated exceptions by (date, day, time-range). Scope
// matching happens at lookup time because a single slot can hold both
// entity-scoped and wildcard exceptions.
type ExceptionIndex struct {
	bySlot map[exceptionKey][]*models.ScheduleException
}

// NewExceptionIndex expects the caller to have pre-filtered the exceptions
// to the requested date window.
func NewExceptionIndex(exceptions []models.ScheduleException) *ExceptionIndex {
	index := &ExceptionIndex{
		bySlot: make(map[exceptionKey][]*models.ScheduleException, len(exceptions)),
	}

	owned := make([]models.ScheduleException, len(exceptions))
	copy(owned, exceptions)

	for i := range owned {
		exception := &owned[i]
		key := exceptionKey{
			date:  exception.Date,
			day:   exception.Slot.Day,
			start: exception.Slot.Start,
			end:   exception.Slot.End,
		}
		index.bySlot[key] = append(index.bySlot[key], exception)
	}
	return index
}

// Lookup returns the exception governing (date, day, time-range) for the
// given view, or nil. A candidate matches when its scope field on the view's
// side is either nil (wildcard) or equal to the requested entity.
//
// The source data carries no dedup guarantee, so ties are broken
// deterministically but arbitrarily: an exact-scope match beats a wildcard,
// and among equally specific matches the lowest id wins.
func (index *ExceptionIndex) Lookup(date models.Date, day time.Weekday, start, end models.ClockTime, view View) *models.ScheduleException {
	key := exceptionKey{date: date, day: day, start: start, end: end}

	var best *models.ScheduleException
	var bestExact bool
	for _, candidate := range index.bySlot[key] {
		scope, requested := scopeForView(candidate, view)
		if scope != nil && *scope != requested {
			continue
		}
		exact := scope != nil
		switch {
		case best == nil:
			best, bestExact = candidate, exact
		case exact && !bestExact:
			best, bestExact = candidate, true
		case exact == bestExact && candidate.ID < best.ID:
			best = candidate
		}
	}
	return best
}

func scopeForView(exception *models.ScheduleException, view View) (scope *int64, requested int64) {
	if view.Kind == ViewByTeacher {
		return exception.ScopeTeacherID, view.TeacherID
	}
	return exception.ScopeClassID, view.ClassID
}
