package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "go.yaml.in/yaml/v3"
)

//go:embed seed.yaml
var seedYAML []byte

// AllDepartments is the department filter value that matches every course.
const AllDepartments = "all"

// Catalog is the static list of courses offered for registration.
type Catalog struct {
	Courses []Course `json:"courses" validate:"dive"`
}

// Seed returns the built-in catalog shipped with the binary.
func Seed() (*Catalog, error) {
	return Parse("seed.yaml", seedYAML)
}

// LoadFile reads a catalog from a .json, .yaml or .yml file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes and validates catalog data. The name's extension selects the
// format; anything that is not YAML is treated as JSON.
func Parse(name string, data []byte) (*Catalog, error) {
	jsonData, err := coerceToJSON(name, data)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(jsonData))
	dec.DisallowUnknownFields()

	var cat Catalog
	if err := dec.Decode(&cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", filepath.Base(name), err)
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// coerceToJSON converts YAML input to JSON so both formats share the strict
// JSON decoder.
func coerceToJSON(name string, data []byte) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext != ".yaml" && ext != ".yml" {
		return data, nil
	}

	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	out, err := json.Marshal(normalizeYAML(v))
	if err != nil {
		return nil, fmt.Errorf("yaml->json marshal: %w", err)
	}
	return out, nil
}

// normalizeYAML makes sure every map key is a string.
func normalizeYAML(in any) any {
	switch x := in.(type) {
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, v := range x {
			m[fmt.Sprint(k)] = normalizeYAML(v)
		}
		return m
	case map[string]any:
		for k, v := range x {
			x[k] = normalizeYAML(v)
		}
		return x
	case []any:
		for i := range x {
			x[i] = normalizeYAML(x[i])
		}
		return x
	default:
		return in
	}
}

// ErrUnknownCourse is returned when a course ID is not in the catalog.
var ErrUnknownCourse = errors.New("unknown course")

// ByID looks up a course by its ID.
func (c *Catalog) ByID(id string) (Course, error) {
	for _, course := range c.Courses {
		if course.ID == id {
			return course, nil
		}
	}
	return Course{}, fmt.Errorf("%w: %s", ErrUnknownCourse, id)
}

// Departments returns AllDepartments followed by each department in order of
// first appearance.
func (c *Catalog) Departments() []string {
	departments := []string{AllDepartments}
	seen := make(map[string]bool)

	for _, course := range c.Courses {
		if course.Department == "" || seen[course.Department] {
			continue
		}
		seen[course.Department] = true
		departments = append(departments, course.Department)
	}
	return departments
}
