package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestCacheReadWrite(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	rawURL := "https://uni.example/catalog/fall.html"

	// 1. Read non-existent cache
	if cat, ok := readCache(rawURL); ok || cat != nil {
		t.Errorf("expected readCache to fail for non-existent cache, but got success")
	}

	// 2. Write cache
	want := &Catalog{Courses: []Course{{ID: "1", Code: "CS 1050", Title: "Intro", Schedule: "Mon 10:00-11:00"}}}
	if err := writeCache(rawURL, want); err != nil {
		t.Fatalf("writeCache failed: %v", err)
	}

	expectedPath := filepath.Join(tempDir, ".regctl_cache", "uni.example_catalog_fall.html.json")
	if _, err := os.Stat(expectedPath); os.IsNotExist(err) {
		t.Errorf("expected cache file to be created at %s", expectedPath)
	}

	// 3. Read existing valid cache
	got, ok := readCache(rawURL)
	if !ok {
		t.Fatalf("expected readCache to succeed for existing cache, but failed")
	}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("cached catalog does not match.\nGot: %+v\nExpected: %+v", got, want)
	}
}

func TestCacheExpiration(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	rawURL := "https://uni.example/old.json"
	cachePath, err := getCachePath(rawURL)
	if err != nil {
		t.Fatalf("getCachePath failed: %v", err)
	}

	entry := CacheEntry{
		Timestamp: time.Now().Add(-24 * time.Hour),
		Catalog:   Catalog{Courses: []Course{{ID: "old"}}},
	}
	data, _ := json.Marshal(entry)
	if err := os.WriteFile(cachePath, data, 0644); err != nil {
		t.Fatalf("failed to write stale cache: %v", err)
	}

	if _, ok := readCache(rawURL); ok {
		t.Errorf("expected readCache to reject expired cache (24h old, limit is 12h)")
	}
}
