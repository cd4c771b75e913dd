package timetable

// ViewKind selects the perspective a schedule is queried from.
type ViewKind string

const (
	ViewByClass   ViewKind = "class"
	ViewByTeacher ViewKind = "teacher"
)

// View identifies the entity whose schedule is being resolved: one class or
// one teacher, never both.
type View struct {
	Kind      ViewKind
	ClassID   int64
	TeacherID int64
}

func ClassView(classID int64) View {
	return View{Kind: ViewByClass, ClassID: classID}
}

func TeacherView(teacherID int64) View {
	return View{Kind: ViewByTeacher, TeacherID: teacherID}
}
