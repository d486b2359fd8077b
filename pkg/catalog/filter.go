package catalog

import "strings"

// Matches reports whether the course matches a free-text search over title,
// code and professor (case-insensitive) and a department filter.
// An empty department or AllDepartments matches every course.
func (c Course) Matches(search, department string) bool {
	if department != "" && department != AllDepartments && c.Department != department {
		return false
	}

	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Title), term) ||
		strings.Contains(strings.ToLower(c.Code), term) ||
		strings.Contains(strings.ToLower(c.Professor), term)
}
