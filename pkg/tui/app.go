package tui

import (
	"errors"
	"fmt"

	"regctl/pkg/catalog"
	"regctl/pkg/config"
	"regctl/pkg/render"
	"regctl/pkg/session"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// GetTheme loads the user's saved accent color and builds the form theme.
func GetTheme() *huh.Theme {
	cfg, err := config.Load()
	baseColor := render.DefaultAccent

	if err == nil && cfg != nil && cfg.AccentColor != "" {
		baseColor = cfg.AccentColor
	}

	// Keep printed output in the same accent as the forms
	render.SetAccent(baseColor)

	return GetCustomTheme(baseColor)
}

// GetCustomTheme returns a huh.Theme built around the given lipgloss color.
// Used to preview colors before they are saved.
func GetCustomTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(p)
	t.Focused.UnselectedPrefix = t.Focused.UnselectedPrefix.Foreground(lipgloss.AdaptiveColor{Light: "", Dark: "235"})
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	// Softer borders for unfocused elements
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// dashboard is the in-memory state of one interactive session.
type dashboard struct {
	log     zerolog.Logger
	cfg     *config.AppConfig
	catalog *catalog.Catalog
	state   session.State
}

// commit replaces the session state and persists it.
func (d *dashboard) commit(next session.State) error {
	d.state = next
	session.ApplyTo(d.cfg, d.state)
	return config.Save(d.cfg)
}

// reloadSettings picks up changes saved by the settings menu. A new catalog
// source is loaded and the registrations are resolved against it.
func (d *dashboard) reloadSettings() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	render.SetAccent(cfg.AccentColor)

	previous := d.cfg.CatalogSource
	d.cfg = cfg
	if cfg.CatalogSource == previous {
		return nil
	}

	cat, err := catalog.NewClient(d.log).Load(cfg.CatalogSource)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	session.ApplyTo(d.cfg, d.state)
	state, stale := session.FromConfig(d.cfg, cat)
	for _, id := range stale {
		d.log.Warn().Str("course_id", id).Msg("registered course is not in the new catalog, dropping it")
	}
	state = session.SetDepartment(session.SetSearch(state, d.state.Search), catalog.AllDepartments)

	d.catalog = cat
	return d.commit(state)
}

func loadDashboard(log zerolog.Logger) (*dashboard, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	client := catalog.NewClient(log)
	var cat *catalog.Catalog

	_ = spinner.New().
		Title("Loading course catalog...").
		Action(func() {
			cat, err = client.Load(cfg.CatalogSource)
		}).
		Run()

	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	state, stale := session.FromConfig(cfg, cat)
	for _, id := range stale {
		log.Warn().Str("course_id", id).Msg("registered course is no longer in the catalog, dropping it")
	}

	return &dashboard{log: log, cfg: cfg, catalog: cat, state: state}, nil
}

// RunTUI launches the dashboard: sign in, then the main menu until the
// student quits or logs out.
func RunTUI(log zerolog.Logger) error {
	d, err := loadDashboard(log)
	if err != nil {
		return err
	}

	if !d.state.Authenticated {
		if err := d.runLogin(); err != nil {
			return quietAbort(err)
		}
	}
	fmt.Println(render.Greeting(d.state.Email))

	for {
		var action string

		menu := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("What would you like to do?").
					Description(fmt.Sprintf("%d course(s) registered · %d credits", len(d.state.Registered), d.state.TotalCredits())).
					Options(
						huh.NewOption("🔎 Browse & Register Courses", "browse"),
						huh.NewOption("📋 My Schedule", "registered"),
						huh.NewOption("🗑️ Drop Courses", "drop"),
						huh.NewOption("📅 View Calendar", "calendar"),
						huh.NewOption("⚙️ Settings", "config"),
						huh.NewOption("🚪 Logout", "logout"),
						huh.NewOption("Quit", "quit"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := menu.Run(); err != nil {
			return quietAbort(err)
		}

		switch action {
		case "browse":
			err = d.runBrowse()
		case "registered":
			fmt.Println(render.Registered(d.state))
			fmt.Println()
		case "drop":
			err = d.runDrop()
		case "calendar":
			d.printCalendar()
		case "config":
			if err = RunConfigTUI(log); err == nil {
				err = d.reloadSettings()
			}
		case "logout":
			dropped := len(d.state.Registered)
			if err := d.commit(session.Logout(d.state)); err != nil {
				return err
			}
			fmt.Println(render.Accent(fmt.Sprintf("Logged out. %d registration(s) cleared.", dropped)))
			return nil
		default:
			return nil
		}

		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			return err
		}
	}
}

func quietAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}
