package render

import (
	"github.com/charmbracelet/lipgloss"

	"regctl/pkg/schedule"
)

// DefaultAccent is AUP gold, readable on dark and light terminals.
const DefaultAccent = "#D4AF37"

var (
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(DefaultAccent)).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// paletteHex maps schedule palette names to terminal colors.
var paletteHex = map[string]string{
	"blue":   "#3B82F6",
	"green":  "#22C55E",
	"purple": "#A855F7",
	"orange": "#F97316",
	"pink":   "#EC4899",
	"indigo": "#6366F1",
	"red":    "#EF4444",
	"teal":   "#14B8A6",
	"yellow": "#EAB308",
	"cyan":   "#06B6D4",
}

// SetAccent changes the accent color used for headings.
func SetAccent(color string) {
	if color == "" {
		color = DefaultAccent
	}
	accentStyle = accentStyle.Foreground(lipgloss.Color(color))
}

// Accent renders s in the accent color.
func Accent(s string) string {
	return accentStyle.Render(s)
}

// Warn renders s as a warning.
func Warn(s string) string {
	return warnStyle.Render(s)
}

// Muted renders s in a dim color.
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// CourseColor returns the terminal color for a course code.
func CourseColor(code string) lipgloss.Color {
	return lipgloss.Color(paletteHex[schedule.CourseColor(code)])
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}
