package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Registration is a saved course registration.
type Registration struct {
	CourseID     string    `json:"course_id"`
	RegisteredAt time.Time `json:"registered_at"`
}

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	Email         string         `json:"email,omitempty"`
	LoggedIn      bool           `json:"logged_in,omitempty"`
	Registrations []Registration `json:"registrations,omitempty"`
	// CatalogSource is a file path or URL; empty means the built-in catalog.
	CatalogSource string `json:"catalog_source,omitempty"`
	AccentColor   string `json:"accent_color,omitempty"`
	// ShowOverflow disables clamping of slots that run outside 08:00-20:00.
	ShowOverflow bool `json:"show_overflow,omitempty"`
}

// getConfigPath returns the absolute path to ~/.regctl.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".regctl.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
