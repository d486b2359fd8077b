package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names so messages match the catalog file.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError lists every problem found in a catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid catalog: %s", strings.Join(e.Problems, "; "))
}

// Validate checks field constraints on every course and that IDs are unique.
func (c *Catalog) Validate() error {
	var problems []string
	seen := make(map[string]bool)

	for i, course := range c.Courses {
		if err := validate.Struct(course); err != nil {
			var ve validator.ValidationErrors
			if !errors.As(err, &ve) {
				return err
			}
			for _, fe := range ve {
				problems = append(problems, fmt.Sprintf("course %d (%s): %s failed %q", i, course.Code, fe.Field(), fe.Tag()))
			}
		}

		if course.ID != "" {
			if seen[course.ID] {
				problems = append(problems, fmt.Sprintf("course %d (%s): duplicate id %q", i, course.Code, course.ID))
			}
			seen[course.ID] = true
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
