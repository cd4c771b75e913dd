package models

import "time"

type AcademicYear struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
	Start Date   `json:"start"`
	End   Date   `json:"end"`
}

// Term is one trimester of an academic year. A term belongs to exactly one
// year; the school backend enforces that ownership.
type Term struct {
	ID             int64  `json:"id"`
	AcademicYearID int64  `json:"academicYearId"`
	Label          string `json:"label"`
	Start          Date   `json:"start"`
	End            Date   `json:"end"`
}

// BaseScheduleEntry is a recurring weekly commitment: the same class, teacher
// and subject at the same weekly slot, every week of one academic year.
type BaseScheduleEntry struct {
	ID             int64    `json:"id"`
	Slot           TimeSlot `json:"timeSlot"`
	ClassID        int64    `json:"classId"`
	TeacherID      int64    `json:"teacherId"`
	SubjectID      int64    `json:"subjectId"`
	AcademicYearID int64    `json:"academicYearId"`
}

type ExceptionKind string

const (
	ExceptionCancellation        ExceptionKind = "cancellation"
	ExceptionHoliday             ExceptionKind = "holiday"
	ExceptionTeacherSubstitution ExceptionKind = "teacher_substitution"
	ExceptionSessionRelocation   ExceptionKind = "session_relocation"
	ExceptionSpecialEvent        ExceptionKind = "special_event"
)

// Replacement carries the new values of an exception that changes a slot
// rather than removing it. Every field is optional on the wire; the resolver
// decides per kind which ones are required.
type Replacement struct {
	SubjectID  *int64        `json:"subjectId,omitempty"`
	TeacherID  *int64        `json:"teacherId,omitempty"`
	NewDay     *time.Weekday `json:"newDay,omitempty"`
	NewStart   *ClockTime    `json:"newStart,omitempty"`
	NewEnd     *ClockTime    `json:"newEnd,omitempty"`
	NewClassID *int64        `json:"newClassId,omitempty"`
}

// ScheduleException is a dated override of the base schedule for one
// calendar date. A nil ScopeClassID or ScopeTeacherID means the exception
// applies to every class or teacher view at that date and slot (wildcard,
// used for holidays).
type ScheduleException struct {
	ID             int64         `json:"id"`
	Date           Date          `json:"date"`
	Slot           TimeSlot      `json:"timeSlot"`
	ScopeClassID   *int64        `json:"scopeClassId,omitempty"`
	ScopeTeacherID *int64        `json:"scopeTeacherId,omitempty"`
	Kind           ExceptionKind `json:"kind"`
	Reason         string        `json:"reason,omitempty"`
	Replacement    *Replacement  `json:"replacement,omitempty"`
}
