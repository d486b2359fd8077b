package catalog

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client downloads published catalogs.
type Client struct {
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a catalog client that logs through log.
func NewClient(log zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// IsURL reports whether source names a remote catalog rather than a file.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Get fetches rawURL and returns the response body.
func (c *Client) Get(rawURL string) ([]byte, error) {
	req, err := http.NewRequest("GET", rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "regctl/1.0")
	req.Header.Set("Accept", "application/json, application/yaml, text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", rawURL, err)
	}
	return body, nil
}

// FetchCatalog downloads and parses the catalog at rawURL. JSON and YAML are
// chosen by the URL's extension, anything else is scraped as HTML. Results
// are cached on disk for cacheDuration.
func (c *Client) FetchCatalog(rawURL string) (*Catalog, error) {
	if cached, ok := readCache(rawURL); ok {
		c.log.Debug().Str("url", rawURL).Int("courses", len(cached.Courses)).Msg("catalog cache hit")
		return cached, nil
	}

	body, err := c.Get(rawURL)
	if err != nil {
		return nil, err
	}

	var cat *Catalog
	switch ext := urlExt(rawURL); ext {
	case ".json", ".yaml", ".yml":
		cat, err = Parse("catalog"+ext, body)
	default:
		cat, err = ParseHTML(bytes.NewReader(body))
	}
	if err != nil {
		return nil, err
	}

	if err := writeCache(rawURL, cat); err != nil {
		c.log.Warn().Err(err).Str("url", rawURL).Msg("could not cache catalog")
	}
	c.log.Debug().Str("url", rawURL).Int("courses", len(cat.Courses)).Msg("catalog downloaded")
	return cat, nil
}

func urlExt(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(path.Ext(u.Path))
}

// Load resolves a catalog source: empty means the built-in seed, a URL is
// fetched through the client, anything else is read as a local file.
func (c *Client) Load(source string) (*Catalog, error) {
	switch {
	case source == "":
		return Seed()
	case IsURL(source):
		return c.FetchCatalog(source)
	default:
		return LoadFile(source)
	}
}
