package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"regctl/pkg/config"
)

// setupHome points HOME at a temp dir holding a logged-in config with the
// given registrations.
func setupHome(t *testing.T, courseIDs ...string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cfg := &config.AppConfig{Email: "student@aup.edu", LoggedIn: true}
	for _, id := range courseIDs {
		cfg.Registrations = append(cfg.Registrations, config.Registration{CourseID: id, RegisteredAt: time.Now()})
	}
	if err := config.Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}
}

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func savedCourseIDs(t *testing.T) []string {
	t.Helper()
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	var ids []string
	for _, r := range cfg.Registrations {
		ids = append(ids, r.CourseID)
	}
	return ids
}

func TestRegister_UnknownCourseKeepsOthers(t *testing.T) {
	setupHome(t)

	if err := runCommand(t, "register", "1", "no-such-id", "2"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	ids := savedCourseIDs(t)
	if len(ids) != 2 || ids[0] != "1" || ids[1] != "2" {
		t.Errorf("expected courses 1 and 2 to be saved, got %v", ids)
	}
}

func TestExport_WritesScheduledCourses(t *testing.T) {
	setupHome(t, "1", "9", "10")
	output := filepath.Join(t.TempDir(), "term.ics")

	if err := runCommand(t, "export", "--output", output, "--week-of", "2026-03-04", "--weeks", "3"); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("expected %s to exist: %v", output, err)
	}
	if len(data) == 0 {
		t.Errorf("expected a non-empty calendar file")
	}
}

func TestExport_NothingScheduled(t *testing.T) {
	// Course 10 is TBA, so it never reaches the calendar.
	setupHome(t, "10")
	output := filepath.Join(t.TempDir(), "empty.ics")

	if err := runCommand(t, "export", "--output", output, "--week-of", "", "--weeks", "15"); err == nil {
		t.Fatal("expected an error when no course has a weekly schedule")
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Errorf("expected no file to be written, stat returned %v", err)
	}
}
