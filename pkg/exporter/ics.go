package exporter

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"regctl/pkg/schedule"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// DefaultWeeks is the length of a semester in teaching weeks.
const DefaultWeeks = 15

// StartOfWeek returns midnight on the Monday of the week containing t,
// in t's location.
func StartOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	day := t.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}

// GenerateICS writes the weekly schedule as an iCalendar file. Each slot
// becomes one event in the week containing weekOf, repeating weekly for the
// given number of weeks.
func GenerateICS(week []schedule.DaySchedule, weekOf time.Time, weeks int, w io.Writer) error {
	if weeks <= 0 {
		weeks = DefaultWeeks
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//regctl//Course Schedule//EN")

	monday := StartOfWeek(weekOf)
	now := time.Now()

	for dayIdx, day := range week {
		date := monday.AddDate(0, 0, dayIdx)

		for _, slot := range day.Slots {
			start, err := clockOn(date, slot.StartTime)
			if err != nil {
				return err
			}
			end, err := clockOn(date, slot.EndTime)
			if err != nil {
				return err
			}

			c := slot.Course
			event := cal.AddEvent(eventUID(c.ID, slot.Day, monday))
			event.SetCreatedTime(now)
			event.SetDtStampTime(now)
			event.SetModifiedAt(now)
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.AddRrule(fmt.Sprintf("FREQ=WEEKLY;COUNT=%d", weeks))
			event.SetSummary(fmt.Sprintf("%s %s", c.Code, c.Title))
			event.SetLocation(c.Location)
			event.SetDescription(fmt.Sprintf("Professor: %s\nCredits: %d\nDepartment: %s", c.Professor, c.Credits, c.Department))
		}
	}

	return cal.SerializeTo(w)
}

// WriteFile exports the week to path. The file is only written once the
// whole calendar has been generated, so a failed export leaves nothing behind.
func WriteFile(path string, week []schedule.DaySchedule, weekOf time.Time, weeks int) error {
	var buf bytes.Buffer
	if err := GenerateICS(week, weekOf, weeks, &buf); err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func clockOn(date time.Time, clock string) (time.Time, error) {
	minutes, err := schedule.ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return date.Add(time.Duration(minutes) * time.Minute), nil
}

// eventUID is stable across exports of the same course, day and term start,
// so re-importing updates events instead of duplicating them.
func eventUID(courseID, day string, monday time.Time) string {
	name := fmt.Sprintf("regctl:%s:%s:%s", courseID, day, monday.Format("2006-01-02"))
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String() + "@regctl"
}
