package catalog

import "time"

// Course is a single catalog entry. Catalog data is read-only reference data.
type Course struct {
	ID             string `json:"id" validate:"required"`
	Code           string `json:"code" validate:"required"`
	Title          string `json:"title" validate:"required"`
	Credits        int    `json:"credits" validate:"gte=0"`
	Professor      string `json:"professor"`
	Schedule       string `json:"schedule"` // e.g. "Mon, Wed 10:00-11:30"
	Location       string `json:"location"`
	AvailableSpots int    `json:"available_spots" validate:"gte=0,ltefield=TotalSpots"`
	TotalSpots     int    `json:"total_spots" validate:"gte=0"`
	Department     string `json:"department"`
	Description    string `json:"description,omitempty"`
}

// Full reports whether the course has no remaining seats.
func (c Course) Full() bool {
	return c.AvailableSpots <= 0
}

// LowAvailability matches the dashboard's red availability bar (under 25% left).
func (c Course) LowAvailability() bool {
	if c.TotalSpots <= 0 {
		return true
	}
	return float64(c.AvailableSpots)/float64(c.TotalSpots)*100 < 25
}

// RegisteredCourse is a Course a student registered for during a session.
type RegisteredCourse struct {
	Course
	RegisteredAt time.Time `json:"registered_at"`
}
