package tui

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"regctl/pkg/catalog"
	"regctl/pkg/config"
	"regctl/pkg/render"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// RunConfigTUI launches the interactive settings menu.
func RunConfigTUI(log zerolog.Logger) error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Course Catalog Source", "catalog"),
						huh.NewOption("Toggle Calendar Overflow Markers", "overflow"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return quietAbort(err)
		}

		switch action {
		case "theme":
			err = runSetThemeTUI(cfg)
		case "catalog":
			err = runSetCatalogTUI(cfg, log)
		case "overflow":
			cfg.ShowOverflow = !cfg.ShowOverflow
			err = config.Save(cfg)
			if err == nil {
				fmt.Println(render.Accent(fmt.Sprintf("\n✅ Calendar overflow markers: %v\n", cfg.ShowOverflow)))
			}
		case "view":
			printConfig(cfg)
		default:
			return nil
		}

		if err != nil {
			return quietAbort(err)
		}
	}
}

func printConfig(cfg *config.AppConfig) {
	fmt.Println(render.Accent("\n--- Current Configuration (~/.regctl.json) ---"))
	if cfg.LoggedIn {
		fmt.Printf("Signed in as: %s\n", cfg.Email)
	} else {
		fmt.Println("Signed in as: nobody")
	}
	if cfg.CatalogSource == "" {
		fmt.Println("Catalog: built-in")
	} else {
		fmt.Printf("Catalog: %s\n", cfg.CatalogSource)
	}
	fmt.Printf("Registrations: %d\n", len(cfg.Registrations))
	fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
	fmt.Printf("Overflow Markers: %v\n", cfg.ShowOverflow)
	fmt.Println()
}

func runSetCatalogTUI(cfg *config.AppConfig, log zerolog.Logger) error {
	source := cfg.CatalogSource

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Catalog file or URL").
				Description("JSON or YAML file, or a URL to a JSON, YAML or HTML course listing.\nLeave empty to use the built-in catalog.").
				Placeholder("e.g. ~/courses.yaml or https://registrar.example.edu/courses").
				Value(&source),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}
	source = strings.TrimSpace(source)

	var cat *catalog.Catalog
	var loadErr error
	_ = spinner.New().
		Title("Checking catalog...").
		Action(func() {
			cat, loadErr = catalog.NewClient(log).Load(source)
		}).
		Run()

	if loadErr != nil {
		fmt.Println(render.Warn(fmt.Sprintf("❌ Could not load catalog: %v", loadErr)))
		return nil
	}

	cfg.CatalogSource = source
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(render.Accent(fmt.Sprintf("\n✅ Catalog saved (%d courses, %d departments).\n", len(cat.Courses), len(cat.Departments()))))
	return nil
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func validateHexColor(str string) error {
	if !hexColor.MatchString(strings.TrimSpace(str)) {
		return errors.New("must be # followed by 6 hex digits, e.g. #D4AF37")
	}
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for regctl").
				Description("Select a curated style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Campus Gold", colorBlock(render.DefaultAccent)), render.DefaultAccent),
					huh.NewOption(fmt.Sprintf("%s Royal Purple", colorBlock("99")), "99"),
					huh.NewOption(fmt.Sprintf("%s Ocean Blue", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Matrix Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(validateHexColor),
			),
		).WithTheme(GetCustomTheme(cfg.AccentColor))

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = strings.ToUpper(strings.TrimSpace(hexInput))
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	render.SetAccent(cfg.AccentColor)
	fmt.Println(render.Accent("\n✅ The theme color is now saved.\n"))
	return nil
}
