package constvars

const (
	SuccessGetWeekSchedule = "week schedule retrieved successfully"
)
