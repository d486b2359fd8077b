package schedule

import (
	"reflect"
	"testing"

	"regctl/pkg/catalog"
)

func registered(id, code, schedule string) catalog.RegisteredCourse {
	return catalog.RegisteredCourse{Course: catalog.Course{ID: id, Code: code, Title: code, Schedule: schedule}}
}

func slotCodes(day DaySchedule) []string {
	codes := []string{}
	for _, s := range day.Slots {
		codes = append(codes, s.Course.Code)
	}
	return codes
}

func TestBuildWeeklyScheduleExample(t *testing.T) {
	courses := []catalog.RegisteredCourse{
		registered("a", "A", "Mon, Wed 10:00-11:30"),
		registered("b", "B", "Mon 09:00-09:50"),
		registered("c", "C", "Fri 14:00-15:15"),
	}

	week := BuildWeeklySchedule(courses)

	if len(week) != 5 {
		t.Fatalf("expected 5 days, got %d", len(week))
	}
	for i, name := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"} {
		if week[i].Day != name {
			t.Errorf("day %d = %q, want %q", i, week[i].Day, name)
		}
	}

	want := [][]string{{"B", "A"}, {}, {"A"}, {}, {"C"}}
	for i := range week {
		if got := slotCodes(week[i]); !reflect.DeepEqual(got, want[i]) {
			t.Errorf("%s slots = %v, want %v", week[i].Day, got, want[i])
		}
	}

	mon := week[0].Slots
	if mon[0].StartTime != "09:00" || mon[1].StartTime != "10:00" {
		t.Errorf("unexpected Monday start times: %s, %s", mon[0].StartTime, mon[1].StartTime)
	}
	if mon[1].Day != "Mon" || week[2].Slots[0].Day != "Wed" {
		t.Errorf("slots should keep the day token from the schedule string")
	}

	// Slots reference the caller's courses rather than copies.
	if week[2].Slots[0].Course != &courses[0] {
		t.Errorf("expected Wednesday slot to point at the original course")
	}
}

func TestBuildWeeklyScheduleEmpty(t *testing.T) {
	week := BuildWeeklySchedule(nil)
	if len(week) != 5 {
		t.Fatalf("expected 5 days, got %d", len(week))
	}
	for _, day := range week {
		if day.Slots == nil || len(day.Slots) != 0 {
			t.Errorf("%s: expected empty, non-nil slot list", day.Day)
		}
	}
}

func TestBuildWeeklyScheduleSortedAndStable(t *testing.T) {
	courses := []catalog.RegisteredCourse{
		registered("1", "LATE", "Tue 16:00-17:00"),
		registered("2", "TIE1", "Tue 9:00-10:00"),
		registered("3", "EARLY", "Tue 08:30-09:00"),
		registered("4", "TIE2", "Tue 09:00-09:30"),
	}

	week := BuildWeeklySchedule(courses)
	got := slotCodes(week[1])
	want := []string{"EARLY", "TIE1", "TIE2", "LATE"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tuesday order = %v, want %v", got, want)
	}

	for _, day := range week {
		for i := 1; i < len(day.Slots); i++ {
			if TimeToMinutes(day.Slots[i-1].StartTime) > TimeToMinutes(day.Slots[i].StartTime) {
				t.Errorf("%s slots are not sorted by start time", day.Day)
			}
		}
	}
}

func TestBuildWeeklyScheduleIdempotent(t *testing.T) {
	courses := []catalog.RegisteredCourse{
		registered("a", "A", "Mon, Wed 10:00-11:30"),
		registered("b", "B", "Thu 12:00-13:00"),
	}

	first := BuildWeeklySchedule(courses)
	second := BuildWeeklySchedule(courses)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical output for identical input")
	}
}

func TestBuildWeeklyReportSkips(t *testing.T) {
	courses := []catalog.RegisteredCourse{
		registered("sat", "SAT", "Sat 10:00-11:00"),
		registered("tba", "TBA", "TBA"),
		registered("bad", "BAD", "Mon 25:00-26:00"),
		registered("mix", "MIX", "Thu, Sun 10:00-11:00"),
	}

	report := BuildWeeklyReport(courses)

	total := 0
	for _, day := range report.Week {
		total += len(day.Slots)
	}
	if total != 1 {
		t.Fatalf("expected only the Thursday slot of MIX, got %d slots", total)
	}
	if got := slotCodes(report.Week[3]); !reflect.DeepEqual(got, []string{"MIX"}) {
		t.Errorf("Thursday = %v, want [MIX]", got)
	}

	want := []struct {
		code   string
		token  string
		reason SkipReason
	}{
		{"SAT", "Sat", SkipUnknownDay},
		{"TBA", "", SkipNoMatch},
		{"BAD", "", SkipInvalidTime},
		{"MIX", "Sun", SkipUnknownDay},
	}
	if len(report.Skipped) != len(want) {
		t.Fatalf("expected %d skipped entries, got %d: %+v", len(want), len(report.Skipped), report.Skipped)
	}
	for i, w := range want {
		s := report.Skipped[i]
		if s.Course.Code != w.code || s.Token != w.token || s.Reason != w.reason {
			t.Errorf("skipped[%d] = {%s %q %s}, want {%s %q %s}", i, s.Course.Code, s.Token, s.Reason, w.code, w.token, w.reason)
		}
	}
}

func TestWeekdayIndex(t *testing.T) {
	if WeekdayIndex("Mon") != Monday || WeekdayIndex("Fri") != Friday {
		t.Errorf("unexpected weekday indices")
	}
	for _, tok := range []string{"Sat", "Sun", "mon", "Monday", ""} {
		if WeekdayIndex(tok) != 0 {
			t.Errorf("WeekdayIndex(%q) should be 0", tok)
		}
	}
}

func TestCourseCount(t *testing.T) {
	week := BuildWeeklySchedule([]catalog.RegisteredCourse{
		registered("a", "A", "Mon, Wed 10:00-11:30"),
		registered("b", "B", "Sat 10:00-12:00"),
		registered("c", "C", "TBA"),
		registered("d", "D", "Tue 25:00-26:00"),
		registered("e", "E", "Fri 14:00-15:15"),
	})

	if got := CourseCount(week); got != 2 {
		t.Errorf("expected 2 courses on the calendar, got %d", got)
	}
	if got := CourseCount(BuildWeeklySchedule(nil)); got != 0 {
		t.Errorf("expected 0 courses for an empty week, got %d", got)
	}
}
