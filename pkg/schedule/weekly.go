package schedule

import (
	"errors"
	"sort"

	"regctl/pkg/catalog"
)

// ScheduleSlot is one weekday occurrence of a registered course. Course points
// into the slice passed to the builder; the slot does not own it.
type ScheduleSlot struct {
	Day       string // token as written in the schedule string, e.g. "Mon"
	StartTime string
	EndTime   string
	Course    *catalog.RegisteredCourse
}

// DaySchedule holds one weekday's slots ordered by start time.
type DaySchedule struct {
	Day   string
	Slots []ScheduleSlot
}

// Weekday indices used by the builder; Monday is 1.
const (
	Monday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
)

var weekdayTokens = map[string]int{
	"Mon": Monday,
	"Tue": Tuesday,
	"Wed": Wednesday,
	"Thu": Thursday,
	"Fri": Friday,
}

// DayNames lists the full names of the five calendar days in output order.
var DayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// WeekdayIndex returns the 1-based weekday for a Mon-Fri token, or 0.
func WeekdayIndex(token string) int {
	return weekdayTokens[token]
}

// SkipReason says why a course (or one day of it) is missing from the week.
type SkipReason string

const (
	SkipNoMatch     SkipReason = "no-match"
	SkipInvalidTime SkipReason = "invalid-time"
	SkipUnknownDay  SkipReason = "unknown-day"
)

// Skipped records schedule data that did not make it into the week.
// Token is set only for SkipUnknownDay.
type Skipped struct {
	Course *catalog.RegisteredCourse
	Token  string
	Reason SkipReason
	Err    error
}

// Report is the weekly schedule plus everything that was left out of it.
type Report struct {
	Week    []DaySchedule
	Skipped []Skipped
}

// BuildWeeklySchedule lays registered courses out over Monday to Friday.
// The result always has five entries in fixed order, empty days included.
// Courses without a usable schedule and non-weekday tokens are left out.
func BuildWeeklySchedule(courses []catalog.RegisteredCourse) []DaySchedule {
	return BuildWeeklyReport(courses).Week
}

// BuildWeeklyReport is BuildWeeklySchedule with a record of what was skipped.
func BuildWeeklyReport(courses []catalog.RegisteredCourse) Report {
	var byDay [Friday + 1][]ScheduleSlot
	var skipped []Skipped

	for i := range courses {
		course := &courses[i]

		parsed, err := Classify(course.Schedule)
		if err != nil {
			reason := SkipInvalidTime
			if errors.Is(err, ErrNoMatch) {
				reason = SkipNoMatch
			}
			skipped = append(skipped, Skipped{Course: course, Reason: reason, Err: err})
			continue
		}

		for _, day := range parsed.Days {
			idx := WeekdayIndex(day)
			if idx == 0 {
				skipped = append(skipped, Skipped{Course: course, Token: day, Reason: SkipUnknownDay})
				continue
			}
			byDay[idx] = append(byDay[idx], ScheduleSlot{
				Day:       day,
				StartTime: parsed.StartTime,
				EndTime:   parsed.EndTime,
				Course:    course,
			})
		}
	}

	week := make([]DaySchedule, 0, len(DayNames))
	for i, name := range DayNames {
		slots := byDay[i+1]
		if slots == nil {
			slots = []ScheduleSlot{}
		}
		sort.SliceStable(slots, func(a, b int) bool {
			return TimeToMinutes(slots[a].StartTime) < TimeToMinutes(slots[b].StartTime)
		})
		week = append(week, DaySchedule{Day: name, Slots: slots})
	}

	return Report{Week: week, Skipped: skipped}
}

// CourseCount returns how many distinct courses have at least one slot in
// the week.
func CourseCount(week []DaySchedule) int {
	seen := make(map[string]bool)
	for _, day := range week {
		for _, slot := range day.Slots {
			seen[slot.Course.ID] = true
		}
	}
	return len(seen)
}
