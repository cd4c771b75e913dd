package constvars

// Resource names of the school backend REST API, used in error messages and
// client base URLs. The backend owns these collections; this service only
// ever reads them.
const (
	ResourceBaseScheduleEntry = "BaseScheduleEntry"
	ResourceScheduleException = "ScheduleException"
	ResourceTerm              = "Term"
	ResourceSubject           = "Subject"
	ResourceTeacher           = "Teacher"
)

const (
	PathBaseScheduleEntries = "/base-schedule-entries"
	PathScheduleExceptions  = "/schedule-exceptions"
	PathTerms               = "/terms"
	PathSubjects            = "/subjects"
	PathTeachers            = "/teachers"
)
