package schedule

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestRawPositionExample(t *testing.T) {
	pos := DefaultWindow.RawPosition("10:00", "11:30")
	if !approx(pos.Top, 16.67) {
		t.Errorf("top = %.4f, want 16.67", pos.Top)
	}
	if !approx(pos.Height, 12.5) {
		t.Errorf("height = %.4f, want 12.5", pos.Height)
	}
}

func TestRawPositionOverflow(t *testing.T) {
	early := DefaultWindow.RawPosition("07:00", "09:00")
	if early.Top >= 0 {
		t.Errorf("expected negative top for a 07:00 start, got %.2f", early.Top)
	}

	late := DefaultWindow.RawPosition("19:00", "21:00")
	if late.Bottom() <= 100 {
		t.Errorf("expected bottom past 100 for a 21:00 end, got %.2f", late.Bottom())
	}
}

func TestPositionClamped(t *testing.T) {
	cases := []struct {
		start, end  string
		top, height float64
	}{
		{"10:00", "11:30", 16.67, 12.5},
		{"07:00", "09:00", 0, 8.33},
		{"19:00", "21:00", 91.67, 8.33},
		{"06:00", "07:00", 0, 0},
		{"21:00", "22:00", 100, 0},
		{"07:00", "22:00", 0, 100},
		{"11:00", "10:00", 25, 0},
	}

	for _, tc := range cases {
		pos := DefaultWindow.Position(tc.start, tc.end)
		if !approx(pos.Top, tc.top) || !approx(pos.Height, tc.height) {
			t.Errorf("Position(%s, %s) = %+v, want top %.2f height %.2f", tc.start, tc.end, pos, tc.top, tc.height)
		}
		if pos.Top < 0 || pos.Bottom() > 100 || pos.Height < 0 {
			t.Errorf("Position(%s, %s) = %+v escapes the window", tc.start, tc.end, pos)
		}
	}

	if DefaultWindow.Visible("06:00", "07:00") {
		t.Errorf("expected a slot before 08:00 to be invisible")
	}
	if !DefaultWindow.Visible("07:30", "08:30") {
		t.Errorf("expected a slot overlapping 08:00 to be visible")
	}
}

func TestWindowRows(t *testing.T) {
	rows := DefaultWindow.Rows()
	if len(rows) != 24 {
		t.Fatalf("expected 24 rows, got %d", len(rows))
	}
	if rows[0] != "08:00" || rows[1] != "08:30" || rows[23] != "19:30" {
		t.Errorf("unexpected row labels: first %s, second %s, last %s", rows[0], rows[1], rows[23])
	}

	if pos := (Window{Start: 600, End: 600}).RawPosition("10:00", "11:00"); pos != (GridPosition{}) {
		t.Errorf("expected zero position for an empty window, got %+v", pos)
	}
}

func TestCourseColor(t *testing.T) {
	// 'C' is 67, 67 % 10 = 7
	if got := CourseColor("CS 1050"); got != "teal" {
		t.Errorf("CourseColor(CS 1050) = %s, want teal", got)
	}
	if CourseColor("CS 1050") != CourseColor("CM 2200") {
		t.Errorf("codes sharing a first letter should share a color")
	}
	if got := CourseColor(""); got != Palette[0] {
		t.Errorf("CourseColor(\"\") = %s, want %s", got, Palette[0])
	}
	for i := 0; i < 3; i++ {
		if CourseColor("EC 1010") != CourseColor("EC 1010") {
			t.Fatalf("CourseColor is not deterministic")
		}
	}
}
