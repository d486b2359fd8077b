package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// cacheDuration determines how long a downloaded catalog is reused.
const cacheDuration = 12 * time.Hour

// CacheEntry is the on-disk cache format.
type CacheEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Catalog   Catalog   `json:"catalog"`
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func getCachePath(rawURL string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".regctl_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	// "https://uni.example/courses.html" -> "uni.example_courses.html.json"
	name := unsafeChars.ReplaceAllString(stripScheme(rawURL), "_")
	return filepath.Join(cacheDir, name+".json"), nil
}

func stripScheme(rawURL string) string {
	return strings.TrimPrefix(strings.TrimPrefix(rawURL, "https://"), "http://")
}

// readCache returns a cached catalog if one exists and has not expired.
func readCache(rawURL string) (*Catalog, bool) {
	path, err := getCachePath(rawURL)
	if err != nil {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if time.Since(entry.Timestamp) > cacheDuration {
		return nil, false
	}

	return &entry.Catalog, true
}

func writeCache(rawURL string, cat *Catalog) error {
	path, err := getCachePath(rawURL)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(CacheEntry{Timestamp: time.Now(), Catalog: *cat}, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
