// Package timetable resolves a recurring weekly base schedule against dated
// exceptions into the concrete schedule displayed for a calendar week. It is
// pure: no I/O, no shared state, total functions. Given identical inputs the
// resolution is referentially transparent, so results are safe to memoize
// and to compute from concurrent rendering passes without locks.
package timetable

import (
	"scolaris-service/internal/app/models"
)

type ResolvedState string

const (
	SlotEmpty     ResolvedState = "empty"
	SlotBase      ResolvedState = "base"
	SlotCancelled ResolvedState = "cancelled"
	SlotHoliday   ResolvedState = "holiday"
	SlotModified  ResolvedState = "modified"
)

// ResolvedSlot is the single outcome computed for one (view, date, slot)
// combination. State discriminates which of the remaining fields are
// meaningful. Subject and teacher ids are surfaced raw; whether they still
// resolve to live directory records is the caller's concern.
type ResolvedSlot struct {
	State           ResolvedState        `json:"state"`
	SubjectID       int64                `json:"subjectId,omitempty"`
	TeacherID       int64                `json:"teacherId,omitempty"`
	Reason          string               `json:"reason,omitempty"`
	OriginalEntryID *int64               `json:"originalEntryId,omitempty"`
	ExceptionKind   models.ExceptionKind `json:"exceptionKind,omitempty"`
}

func EmptySlot() ResolvedSlot {
	return ResolvedSlot{State: SlotEmpty}
}

// SlotResolver combines the base index, the exception index and the term
// cutoff into one deterministic decision per (view, date, time-slot).
type SlotResolver struct {
	base       *BaseScheduleIndex
	exceptions *ExceptionIndex
	cutoff     *models.Date
}

// NewSlotResolver builds a resolver. A nil cutoff disables suppression
// entirely.
func NewSlotResolver(base *BaseScheduleIndex, exceptions *ExceptionIndex, cutoff *models.Date) *SlotResolver {
	return &SlotResolver{
		base:       base,
		exceptions: exceptions,
		cutoff:     cutoff,
	}
}

// Resolve decides what the given view shows at date and slot. The decision
// order is fixed:
//
//  1. dates strictly after the academic-year cutoff are Empty, overriding
//     both base entries and exceptions, so a future-dated exception created
//     in error never leaks past the year boundary;
//  2. a matching exception, if usable, decides the slot;
//  3. otherwise the base entry decides;
//  4. otherwise the slot is Empty.
//
// The weekday used for every lookup is derived from date, not taken from
// slot, so a slot whose Day field disagrees with date cannot smuggle in
// another day's entries.
func (r *SlotResolver) Resolve(view View, date models.Date, slot models.TimeSlot) ResolvedSlot {
	if r.cutoff != nil && date.After(*r.cutoff) {
		return EmptySlot()
	}

	day := date.Weekday()

	if exception := r.exceptions.Lookup(date, day, slot.Start, slot.End, view); exception != nil {
		if resolved, ok := r.applyException(view, date, slot, exception); ok {
			return resolved
		}
		// Malformed exceptions are non-matching, not invalid: resolution
		// degrades to the base path instead of raising.
	}

	if entry := r.base.Lookup(day, slot.Start, slot.End, view); entry != nil {
		return ResolvedSlot{State: SlotBase, SubjectID: entry.SubjectID, TeacherID: entry.TeacherID}
	}
	return EmptySlot()
}

// applyException maps an exception onto a resolved slot. The second return
// value is false when the exception lacks the fields its kind requires, in
// which case resolution proceeds as if no exception existed.
func (r *SlotResolver) applyException(view View, date models.Date, slot models.TimeSlot, exception *models.ScheduleException) (ResolvedSlot, bool) {
	switch exception.Kind {
	case models.ExceptionCancellation:
		resolved := ResolvedSlot{State: SlotCancelled, Reason: exception.Reason}
		// The overridden base entry, if any, is attached so an edit or
		// delete UI can still locate the slot being cancelled.
		if entry := r.base.Lookup(date.Weekday(), slot.Start, slot.End, view); entry != nil {
			entryID := entry.ID
			resolved.OriginalEntryID = &entryID
		}
		return resolved, true

	case models.ExceptionHoliday:
		// Holidays apply whether or not a base entry exists; wildcard scope
		// makes them identical across every class and teacher view.
		return ResolvedSlot{State: SlotHoliday, Reason: exception.Reason}, true

	case models.ExceptionTeacherSubstitution, models.ExceptionSpecialEvent, models.ExceptionSessionRelocation:
		// A relocation only annotates its origin slot; no occurrence is
		// synthesized at the replacement's target day and time.
		replacement := exception.Replacement
		if replacement == nil || replacement.SubjectID == nil || replacement.TeacherID == nil {
			return ResolvedSlot{}, false
		}
		return ResolvedSlot{
			State:         SlotModified,
			SubjectID:     *replacement.SubjectID,
			TeacherID:     *replacement.TeacherID,
			ExceptionKind: exception.Kind,
		}, true

	default:
		return ResolvedSlot{}, false
	}
}
