package requests

// WeekSchedule is the query for one resolved calendar week, from either a
// class or a teacher viewpoint. WeekStart may be any date inside the wanted
// week; the service normalizes it to that week's Monday.
type WeekSchedule struct {
	AcademicYearID int64  `json:"academicYearId" validate:"required,gt=0"`
	View           string `json:"view" validate:"required,view_kind"`
	ClassID        int64  `json:"classId" validate:"required_if=View class"`
	TeacherID      int64  `json:"teacherId" validate:"required_if=View teacher"`
	WeekStart      string `json:"weekStart" validate:"required,datetime=2006-01-02"`
}
