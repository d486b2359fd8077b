package catalog

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestClientFetchCatalogHTMLAndCache(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(listingHTML))
	}))
	defer server.Close()

	client := NewClient(zerolog.Nop())
	url := server.URL + "/courses"

	cat, err := client.FetchCatalog(url)
	if err != nil {
		t.Fatalf("FetchCatalog failed: %v", err)
	}
	if len(cat.Courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(cat.Courses))
	}

	// The second fetch must come from the disk cache.
	if _, err := client.FetchCatalog(url); err != nil {
		t.Fatalf("cached FetchCatalog failed: %v", err)
	}
	if hits != 1 {
		t.Errorf("expected 1 request to the server, got %d", hits)
	}
}

func TestClientFetchCatalogJSON(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"courses":[{"id":"1","code":"MA 1030","title":"Calculus I","total_spots":1,"available_spots":1}]}`))
	}))
	defer server.Close()

	cat, err := NewClient(zerolog.Nop()).FetchCatalog(server.URL + "/fall.json")
	if err != nil {
		t.Fatalf("FetchCatalog failed: %v", err)
	}
	if cat.Courses[0].Code != "MA 1030" {
		t.Errorf("unexpected course: %+v", cat.Courses[0])
	}
}

func TestClientFetchCatalogStatus(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	if _, err := NewClient(zerolog.Nop()).FetchCatalog(server.URL + "/gone.json"); err == nil {
		t.Fatalf("expected error on 404")
	}
}

func TestClientLoadSources(t *testing.T) {
	client := NewClient(zerolog.Nop())

	cat, err := client.Load("")
	if err != nil || len(cat.Courses) == 0 {
		t.Fatalf("expected seed catalog for empty source, got %v (err %v)", cat, err)
	}

	if _, err := client.Load("does-not-exist.yaml"); err == nil {
		t.Errorf("expected error for missing local file")
	}

	if !IsURL("https://x.example/a.json") || IsURL("./a.json") {
		t.Errorf("IsURL misclassified sources")
	}
}
