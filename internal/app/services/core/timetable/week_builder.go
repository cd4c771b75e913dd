package timetable

import (
	"time"

	"scolaris-service/internal/app/models"
)

// DefaultWeekDays is the fixed set of in-scope week days. Sunday is excluded
// by business rule, not by configuration.
var DefaultWeekDays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
}

// DailySlot is a time-range repeated on every displayed day.
type DailySlot struct {
	Start models.ClockTime
	End   models.ClockTime
}

// DefaultDailySlots are the three canonical teaching periods of a school day.
var DefaultDailySlots = []DailySlot{
	{Start: models.NewClockTime(8, 0), End: models.NewClockTime(10, 0)},
	{Start: models.NewClockTime(10, 15), End: models.NewClockTime(12, 0)},
	{Start: models.NewClockTime(12, 15), End: models.NewClockTime(14, 0)},
}

// GridCell is one resolved position of the weekly grid.
type GridCell struct {
	Slot     models.TimeSlot `json:"timeSlot"`
	Resolved ResolvedSlot    `json:"resolved"`
}

// DaySchedule is one column of the grid: a concrete calendar date and its
// resolved slots in canonical order.
type DaySchedule struct {
	Day   time.Weekday `json:"day"`
	Date  models.Date  `json:"date"`
	Slots []GridCell   `json:"slots"`
}

// WeekGrid is the fully resolved display grid for one calendar week.
type WeekGrid struct {
	WeekStart models.Date   `json:"weekStart"`
	Days      []DaySchedule `json:"days"`
}

// WeekScheduleBuilder assembles a WeekGrid by resolving every (day, slot)
// pair of a calendar week. Days and Slots are injectable constants: callers
// needing a different grid shape configure them, the algorithm never derives
// them from data.
type WeekScheduleBuilder struct {
	Resolver *SlotResolver
	Days     []time.Weekday
	Slots    []DailySlot
}

func NewWeekScheduleBuilder(resolver *SlotResolver) *WeekScheduleBuilder {
	return &WeekScheduleBuilder{
		Resolver: resolver,
		Days:     DefaultWeekDays,
		Slots:    DefaultDailySlots,
	}
}

// Build resolves the week containing weekStart for the given view. Any date
// inside the week may be passed; the grid always starts on that week's
// Monday.
func (b *WeekScheduleBuilder) Build(view View, weekStart models.Date) WeekGrid {
	monday := weekStart.StartOfWeek()

	grid := WeekGrid{
		WeekStart: monday,
		Days:      make([]DaySchedule, 0, len(b.Days)),
	}

	for _, day := range b.Days {
		offset := int(day) - int(time.Monday)
		if offset < 0 {
			offset += 7
		}
		date := monday.AddDays(offset)

		daySchedule := DaySchedule{
			Day:   day,
			Date:  date,
			Slots: make([]GridCell, 0, len(b.Slots)),
		}
		for _, dailySlot := range b.Slots {
			slot := models.TimeSlot{Day: day, Start: dailySlot.Start, End: dailySlot.End}
			daySchedule.Slots = append(daySchedule.Slots, GridCell{
				Slot:     slot,
				Resolved: b.Resolver.Resolve(view, date, slot),
			})
		}
		grid.Days = append(grid.Days, daySchedule)
	}
	return grid
}
