package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"regctl/pkg/catalog"
	"regctl/pkg/session"
)

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("238")).
	Padding(0, 1).
	Width(72)

// CreditLabel is "1 Credit" or "N Credits".
func CreditLabel(n int) string {
	if n == 1 {
		return "1 Credit"
	}
	return fmt.Sprintf("%d Credits", n)
}

// Availability renders "available/total", red when seats are running out.
func Availability(c catalog.Course) string {
	text := fmt.Sprintf("%d/%d", c.AvailableSpots, c.TotalSpots)
	if c.Full() {
		return warnStyle.Render(text + " Full")
	}
	if c.LowAvailability() {
		return warnStyle.Render(text)
	}
	return okStyle.Render(text)
}

// CourseCard renders one catalog course.
func CourseCard(c catalog.Course) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s  %s\n", accentStyle.Render(c.Code), CreditLabel(c.Credits), mutedStyle.Render(c.Department))
	fmt.Fprintf(&b, "%s\n", lipgloss.NewStyle().Bold(true).Render(c.Title))
	if c.Description != "" {
		fmt.Fprintf(&b, "%s\n", mutedStyle.Render(c.Description))
	}
	fmt.Fprintf(&b, "\nID:           %s\n", c.ID)
	fmt.Fprintf(&b, "Professor:    %s\n", c.Professor)
	fmt.Fprintf(&b, "Schedule:     %s\n", c.Schedule)
	fmt.Fprintf(&b, "Location:     %s\n", c.Location)
	fmt.Fprintf(&b, "Availability: %s", Availability(c))

	return cardStyle.Render(b.String())
}

// CourseList renders catalog courses as cards, or a notice when none match.
func CourseList(courses []catalog.Course) string {
	if len(courses) == 0 {
		return mutedStyle.Render("No courses found matching your criteria.")
	}
	cards := make([]string, 0, len(courses))
	for _, c := range courses {
		cards = append(cards, CourseCard(c))
	}
	return accentStyle.Render(fmt.Sprintf("Available Courses (%d)", len(courses))) + "\n" +
		lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// Registered renders the "My Schedule" sidebar: credits summary and the
// registered courses.
func Registered(s session.State) string {
	var b strings.Builder

	b.WriteString(accentStyle.Render("My Schedule") + "\n")
	total := fmt.Sprintf("Total Credits: %d", s.TotalCredits())
	if len(s.Registered) > 0 && !s.WithinRecommendedLoad() {
		total = warnStyle.Render(total)
	}
	fmt.Fprintf(&b, "%s\n", total)
	fmt.Fprintf(&b, "%s\n\n", mutedStyle.Render(fmt.Sprintf("Recommended: %d-%d credits per semester", session.MinRecommendedCredits, session.MaxRecommendedCredits)))

	if len(s.Registered) == 0 {
		b.WriteString("No courses registered yet\n")
		b.WriteString(mutedStyle.Render("Browse and register for courses to get started"))
		return b.String()
	}

	for _, rc := range s.Registered {
		fmt.Fprintf(&b, "%s %s  %s\n", swatch(rc.Code), accentStyle.Render(rc.Code), mutedStyle.Render(fmt.Sprintf("%d cr", rc.Credits)))
		fmt.Fprintf(&b, "  %s\n", rc.Title)
		fmt.Fprintf(&b, "  %s\n", mutedStyle.Render(rc.Professor))
		fmt.Fprintf(&b, "  %s\n", mutedStyle.Render(rc.Schedule))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Legend lists each registered course next to its calendar color.
func Legend(courses []catalog.RegisteredCourse) string {
	lines := []string{lipgloss.NewStyle().Bold(true).Render("Registered Courses:")}
	for _, c := range courses {
		lines = append(lines, fmt.Sprintf("%s %s - %s", swatch(c.Code), c.Code, c.Title))
	}
	return strings.Join(lines, "\n")
}

func swatch(code string) string {
	return lipgloss.NewStyle().Foreground(CourseColor(code)).Render("■")
}
