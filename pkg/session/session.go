// Package session holds the registration dashboard's state as a plain value
// and the transitions that act on it. Every transition returns a new State
// and leaves its input untouched.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"regctl/pkg/catalog"
)

var (
	ErrMissingCredentials = errors.New("please enter both email and password")
	ErrNotAuthenticated   = errors.New("not logged in")
	ErrAlreadyRegistered  = errors.New("already registered")
	ErrCourseFull         = errors.New("course is full")
	ErrNotRegistered      = errors.New("not registered")
)

// Recommended credit load per semester.
const (
	MinRecommendedCredits = 12
	MaxRecommendedCredits = 18
)

// State is everything the dashboard knows about the current student.
type State struct {
	Authenticated bool
	Email         string
	Registered    []catalog.RegisteredCourse
	Search        string
	Department    string
}

// New returns a logged-out state with the department filter set to all.
func New() State {
	return State{Department: catalog.AllDepartments}
}

// Login accepts any non-empty email and password. Signing in as a different
// student starts from a fresh session so registrations never carry over.
func Login(s State, email, password string) (State, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return s, ErrMissingCredentials
	}

	next := s.clone()
	if s.Email != "" && !strings.EqualFold(s.Email, email) {
		next = New()
	}
	next.Authenticated = true
	next.Email = email
	return next, nil
}

// Logout ends the session. Registrations do not outlive it.
func Logout(State) State {
	return New()
}

// Register adds course to the registered list, stamped with now.
func Register(s State, course catalog.Course, now time.Time) (State, error) {
	if !s.Authenticated {
		return s, ErrNotAuthenticated
	}
	if s.IsRegistered(course.ID) {
		return s, fmt.Errorf("%w: %s", ErrAlreadyRegistered, course.Code)
	}
	if course.Full() {
		return s, fmt.Errorf("%w: %s", ErrCourseFull, course.Code)
	}

	next := s.clone()
	next.Registered = append(next.Registered, catalog.RegisteredCourse{
		Course:       course,
		RegisteredAt: now.UTC(),
	})
	return next, nil
}

// Drop removes the course with the given ID.
func Drop(s State, courseID string) (State, error) {
	if !s.Authenticated {
		return s, ErrNotAuthenticated
	}
	if !s.IsRegistered(courseID) {
		return s, fmt.Errorf("%w: %s", ErrNotRegistered, courseID)
	}

	next := s.clone()
	next.Registered = next.Registered[:0]
	for _, rc := range s.Registered {
		if rc.ID != courseID {
			next.Registered = append(next.Registered, rc)
		}
	}
	return next, nil
}

// SetSearch updates the free-text course search.
func SetSearch(s State, search string) State {
	next := s.clone()
	next.Search = search
	return next
}

// SetDepartment updates the department filter. Empty means all departments.
func SetDepartment(s State, department string) State {
	if department == "" {
		department = catalog.AllDepartments
	}
	next := s.clone()
	next.Department = department
	return next
}

// Available lists catalog courses that match the current search and
// department and are not registered yet, in catalog order.
func Available(s State, cat *catalog.Catalog) []catalog.Course {
	var out []catalog.Course
	for _, c := range cat.Courses {
		if c.Matches(s.Search, s.Department) && !s.IsRegistered(c.ID) {
			out = append(out, c)
		}
	}
	return out
}

// IsRegistered reports whether the course ID is in the registered list.
func (s State) IsRegistered(courseID string) bool {
	for _, rc := range s.Registered {
		if rc.ID == courseID {
			return true
		}
	}
	return false
}

// TotalCredits sums the credits of every registered course.
func (s State) TotalCredits() int {
	total := 0
	for _, rc := range s.Registered {
		total += rc.Credits
	}
	return total
}

// WithinRecommendedLoad reports whether total credits are within 12-18.
func (s State) WithinRecommendedLoad() bool {
	total := s.TotalCredits()
	return total >= MinRecommendedCredits && total <= MaxRecommendedCredits
}

func (s State) clone() State {
	next := s
	next.Registered = make([]catalog.RegisteredCourse, len(s.Registered))
	copy(next.Registered, s.Registered)
	return next
}
