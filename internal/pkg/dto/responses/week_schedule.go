package responses

import (
	"scolaris-service/internal/app/models"
)

// NamedRef points at a directory record. Name is a display convenience; when
// the id no longer resolves in the school backend the name stays empty and
// the frontend renders its own placeholder from the raw id.
type NamedRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// WeekScheduleSlot is one resolved cell of the displayed grid.
type WeekScheduleSlot struct {
	Start           models.ClockTime `json:"start"`
	End             models.ClockTime `json:"end"`
	State           string           `json:"state"`
	Subject         *NamedRef        `json:"subject,omitempty"`
	Teacher         *NamedRef        `json:"teacher,omitempty"`
	Reason          string           `json:"reason,omitempty"`
	OriginalEntryID *int64           `json:"originalEntryId,omitempty"`
	ExceptionKind   string           `json:"exceptionKind,omitempty"`
}

type WeekScheduleDay struct {
	Day   string             `json:"day"`
	Date  models.Date        `json:"date"`
	Slots []WeekScheduleSlot `json:"slots"`
}

type WeekSchedule struct {
	AcademicYearID int64             `json:"academicYearId"`
	View           string            `json:"view"`
	ClassID        int64             `json:"classId,omitempty"`
	TeacherID      int64             `json:"teacherId,omitempty"`
	WeekStart      models.Date       `json:"weekStart"`
	Cutoff         *models.Date      `json:"cutoff,omitempty"`
	Days           []WeekScheduleDay `json:"days"`
}
