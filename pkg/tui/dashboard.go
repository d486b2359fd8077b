package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"regctl/pkg/catalog"
	"regctl/pkg/exporter"
	"regctl/pkg/render"
	"regctl/pkg/schedule"
	"regctl/pkg/session"

	"github.com/charmbracelet/huh"
)

func (d *dashboard) runLogin() error {
	email := d.state.Email
	var password string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("AUP Course Registration").
				Description("Sign in with your student account."),
			huh.NewInput().
				Title("Email").
				Placeholder("student@aup.edu").
				Value(&email).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("email is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("password is required")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	next, err := session.Login(d.state, strings.TrimSpace(email), password)
	if err != nil {
		return err
	}
	d.log.Info().Str("email", next.Email).Msg("signed in")
	return d.commit(next)
}

// runBrowse filters the catalog and registers the chosen courses.
func (d *dashboard) runBrowse() error {
	search := d.state.Search
	department := d.state.Department
	if department == "" {
		department = catalog.AllDepartments
	}

	var deptOptions []huh.Option[string]
	for _, dept := range d.catalog.Departments() {
		label := dept
		if dept == catalog.AllDepartments {
			label = "All Departments"
		}
		deptOptions = append(deptOptions, huh.NewOption(label, dept))
	}

	filterForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Search courses").
				Description("Matches title, code or professor. Leave empty to list everything.").
				Placeholder("e.g. Computer, CS 1050, Dr. Smith").
				Value(&search),
			huh.NewSelect[string]().
				Title("Department").
				Options(deptOptions...).
				Value(&department),
		),
	).WithTheme(GetTheme())

	if err := filterForm.Run(); err != nil {
		return err
	}

	next := session.SetDepartment(session.SetSearch(d.state, search), department)
	if err := d.commit(next); err != nil {
		return err
	}

	available := session.Available(d.state, d.catalog)
	if len(available) == 0 {
		fmt.Println(render.Warn("No courses match your filters."))
		fmt.Println()
		return nil
	}

	var options []huh.Option[string]
	for _, c := range available {
		label := fmt.Sprintf("%s · %s (%s) · %s", c.Code, c.Title, render.CreditLabel(c.Credits), c.Schedule)
		if c.Full() {
			label += " · FULL"
		}
		options = append(options, huh.NewOption(label, c.ID))
	}

	var selected []string
	pickForm := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(fmt.Sprintf("Register for courses (%d available)", len(available))).
				Description("Space = toggle, Enter = confirm. Start typing to filter.").
				Options(options...).
				Value(&selected).
				Filterable(true).
				Height(12),
		),
	).WithTheme(GetTheme())

	if err := pickForm.Run(); err != nil {
		return err
	}

	state := d.state
	now := time.Now()
	for _, id := range selected {
		course, err := d.catalog.ByID(id)
		if err != nil {
			return err
		}
		next, err := session.Register(state, course, now)
		if err != nil {
			fmt.Println(render.Warn(fmt.Sprintf("❌ %s: %v", course.Code, err)))
			continue
		}
		state = next
		fmt.Println(render.Accent(fmt.Sprintf("✅ Registered for %s %s", course.Code, course.Title)))
	}

	if err := d.commit(state); err != nil {
		return err
	}
	fmt.Println(render.Registered(d.state))
	fmt.Println()
	return nil
}

func (d *dashboard) runDrop() error {
	if len(d.state.Registered) == 0 {
		fmt.Println(render.Muted("You are not registered for any courses yet."))
		fmt.Println()
		return nil
	}

	var options []huh.Option[string]
	for _, rc := range d.state.Registered {
		options = append(options, huh.NewOption(fmt.Sprintf("%s · %s", rc.Code, rc.Title), rc.ID))
	}

	var selected []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Drop courses").
				Description("Space = toggle, Enter = confirm.").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}
	if len(selected) == 0 {
		return nil
	}

	state := d.state
	for _, id := range selected {
		next, err := session.Drop(state, id)
		if err != nil {
			return err
		}
		state = next
	}

	if err := d.commit(state); err != nil {
		return err
	}
	fmt.Println(render.Accent(fmt.Sprintf("✅ Dropped %d course(s). Now at %d credits.", len(selected), d.state.TotalCredits())))
	fmt.Println()
	return nil
}

// printCalendar renders the weekly grid and offers an ICS export.
func (d *dashboard) printCalendar() {
	report := schedule.BuildWeeklyReport(d.state.Registered)
	for _, s := range report.Skipped {
		d.log.Warn().
			Str("course", s.Course.Code).
			Str("schedule", s.Course.Schedule).
			Str("reason", string(s.Reason)).
			Msg("not shown on the weekly calendar")
	}

	fmt.Println(render.Week(report.Week, d.state.Registered, render.CalendarOptions{
		Window:   schedule.DefaultWindow,
		Overflow: d.cfg.ShowOverflow,
	}))
	fmt.Println()

	if len(d.state.Registered) == 0 {
		return
	}

	var export bool
	path := "schedule.ics"
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Export this week to a calendar file?").
				Affirmative("Yes").
				Negative("No").
				Value(&export),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("File name").
				Value(&path),
		).WithHideFunc(func() bool { return !export }),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil || !export {
		return
	}

	if err := exporter.WriteFile(path, report.Week, time.Now(), exporter.DefaultWeeks); err != nil {
		fmt.Println(render.Warn(fmt.Sprintf("❌ %v", err)))
		return
	}
	fmt.Println(render.Accent(fmt.Sprintf("✅ Exported %d course(s) over %d weeks to %s", schedule.CourseCount(report.Week), exporter.DefaultWeeks, path)))
	fmt.Println()
}
