// Package schedule turns course schedule strings into a Monday-Friday weekly
// timetable and lays that timetable out on a fixed daily grid.
//
// Everything in this package is pure: no I/O, no shared state.
package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Parsed is the structured form of a schedule string such as
// "Mon, Wed 10:00-11:30". All days share one time range.
type Parsed struct {
	Days      []string
	StartTime string
	EndTime   string
}

var (
	// ErrNoMatch means the string does not have the "days H:MM-H:MM" shape,
	// e.g. "TBA". The course simply has no calendar presence.
	ErrNoMatch = errors.New("schedule does not match the \"days HH:MM-HH:MM\" format")
	// ErrInvalidTime means the shape matched but a time is outside 00:00-23:59.
	ErrInvalidTime = errors.New("schedule time out of range")
	// ErrEmptyRange means the end time is not after the start time.
	ErrEmptyRange = errors.New("schedule ends before it starts")
)

var schedulePattern = regexp.MustCompile(`([A-Za-z, ]+)\s+(\d{1,2}:\d{2})-(\d{1,2}:\d{2})`)

// ParseSchedule extracts the day tokens and the shared time range from a
// schedule string. ok is false when the string does not have the expected
// shape. Day tokens and time values are not validated.
func ParseSchedule(schedule string) (p Parsed, ok bool) {
	m := schedulePattern.FindStringSubmatch(schedule)
	if m == nil {
		return Parsed{}, false
	}

	tokens := strings.Split(strings.TrimSpace(m[1]), ",")
	days := make([]string, 0, len(tokens))
	for _, t := range tokens {
		days = append(days, strings.TrimSpace(t))
	}

	return Parsed{Days: days, StartTime: m[2], EndTime: m[3]}, true
}

// Classify parses like ParseSchedule but also validates both times, so callers
// can tell a schedule that does not apply (ErrNoMatch) from a malformed one.
func Classify(schedule string) (Parsed, error) {
	p, ok := ParseSchedule(schedule)
	if !ok {
		return Parsed{}, ErrNoMatch
	}

	start, err := ParseClock(p.StartTime)
	if err != nil {
		return p, err
	}
	end, err := ParseClock(p.EndTime)
	if err != nil {
		return p, err
	}
	if end <= start {
		return p, fmt.Errorf("%w: %s-%s", ErrEmptyRange, p.StartTime, p.EndTime)
	}
	return p, nil
}

// ParseClock converts "H:MM" or "HH:MM" into minutes since midnight,
// rejecting hours above 23 and minutes above 59.
func ParseClock(clock string) (int, error) {
	h, m, ok := strings.Cut(clock, ":")
	if !ok || len(m) != 2 || len(h) == 0 || len(h) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, clock)
	}

	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, clock)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, clock)
	}

	return hours*60 + minutes, nil
}

// TimeToMinutes converts "HH:MM" to minutes since midnight without any range
// checks; "25:00" yields 1500. Unparseable parts count as zero.
func TimeToMinutes(clock string) int {
	h, m, _ := strings.Cut(clock, ":")
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	return hours*60 + minutes
}

// MinutesToTime formats minutes since midnight as zero-padded "HH:MM".
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
