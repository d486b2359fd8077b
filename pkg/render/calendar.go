package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"regctl/pkg/catalog"
	"regctl/pkg/schedule"
)

const (
	timeColWidth = 7
	dayColWidth  = 16
)

// CalendarOptions controls how the weekly grid is drawn.
type CalendarOptions struct {
	Window schedule.Window
	// Overflow keeps the unclamped layout and marks slots that run past the
	// window with arrows instead of silently trimming them.
	Overflow bool
}

type cell struct {
	text  string
	code  string
	empty bool
}

// Calendar draws the week as a grid with one row per 30 minutes.
func Calendar(week []schedule.DaySchedule, opts CalendarOptions) string {
	win := opts.Window
	if win.Minutes() <= 0 {
		win = schedule.DefaultWindow
	}
	labels := win.Rows()

	header := []string{lipgloss.NewStyle().Width(timeColWidth).Bold(true).Render("Time")}
	columns := []string{timeColumn(labels)}

	for _, day := range week {
		name := day.Day
		if len(name) > 3 {
			name = name[:3]
		}
		header = append(header, accentStyle.Width(dayColWidth).Align(lipgloss.Center).Render(name))
		columns = append(columns, dayColumn(day, win, len(labels), opts.Overflow))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, header...),
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
	)
}

func timeColumn(labels []string) string {
	style := mutedStyle.Width(timeColWidth)
	lines := make([]string, len(labels))
	for i, l := range labels {
		// Only the full hours are labelled.
		if i%2 == 0 {
			lines[i] = style.Render(l)
		} else {
			lines[i] = style.Render("")
		}
	}
	return strings.Join(lines, "\n")
}

// rowSpan converts a grid position into the [first, last) rows it covers.
func rowSpan(pos schedule.GridPosition, rows int) (int, int) {
	first := int(math.Round(pos.Top / 100 * float64(rows)))
	last := int(math.Round(pos.Bottom() / 100 * float64(rows)))
	if last <= first && pos.Height > 0 {
		last = first + 1
	}
	return first, last
}

func dayColumn(day schedule.DaySchedule, win schedule.Window, rows int, overflow bool) string {
	cells := make([]cell, rows)
	for i := range cells {
		cells[i].empty = true
	}

	for _, slot := range day.Slots {
		var first, last int
		var above, below bool

		if overflow {
			raw := win.RawPosition(slot.StartTime, slot.EndTime)
			first, last = rowSpan(raw, rows)
			above, below = raw.Top < 0, raw.Bottom() > 100
		} else {
			first, last = rowSpan(win.Position(slot.StartTime, slot.EndTime), rows)
		}
		first = max(first, 0)
		last = min(last, rows)

		lines := []string{
			slot.Course.Code,
			slot.StartTime + "-" + slot.EndTime,
			slot.Course.Location,
		}
		if above {
			lines[0] = "↑ " + lines[0]
		}

		for r, line := first, 0; r < last; r, line = r+1, line+1 {
			// An earlier slot keeps rows it already occupies.
			if !cells[r].empty {
				continue
			}
			text := ""
			if line < len(lines) {
				text = lines[line]
			}
			if below && r == last-1 {
				text = "↓ " + text
			}
			cells[r] = cell{text: text, code: slot.Course.Code}
		}
	}

	blank := mutedStyle.Width(dayColWidth)
	out := make([]string, rows)
	for i, c := range cells {
		if c.empty {
			out[i] = blank.Render("·")
			continue
		}
		style := lipgloss.NewStyle().
			Width(dayColWidth).
			Background(CourseColor(c.code)).
			Foreground(lipgloss.Color("#FFFFFF"))
		out[i] = style.Render(truncate(c.text, dayColWidth))
	}
	return strings.Join(out, "\n")
}

// Week renders the calendar view: the grid built from registered followed by
// the color legend.
func Week(week []schedule.DaySchedule, registered []catalog.RegisteredCourse, opts CalendarOptions) string {
	title := accentStyle.Render("Weekly Schedule")
	if len(registered) == 0 {
		return title + "\n\nNo courses registered\n" + mutedStyle.Render("Register for courses to see your schedule")
	}
	return title + "\n\n" + Calendar(week, opts) + "\n\n" + Legend(registered)
}
