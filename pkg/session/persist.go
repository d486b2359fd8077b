package session

import (
	"regctl/pkg/catalog"
	"regctl/pkg/config"
)

// FromConfig rebuilds the session saved in cfg against the current catalog.
// IDs that are no longer in the catalog are dropped and returned as stale.
func FromConfig(cfg *config.AppConfig, cat *catalog.Catalog) (State, []string) {
	s := New()
	s.Authenticated = cfg.LoggedIn
	s.Email = cfg.Email

	var stale []string
	for _, reg := range cfg.Registrations {
		course, err := cat.ByID(reg.CourseID)
		if err != nil {
			stale = append(stale, reg.CourseID)
			continue
		}
		s.Registered = append(s.Registered, catalog.RegisteredCourse{
			Course:       course,
			RegisteredAt: reg.RegisteredAt,
		})
	}
	return s, stale
}

// ApplyTo writes the session's login and registrations into cfg.
func ApplyTo(cfg *config.AppConfig, s State) {
	cfg.LoggedIn = s.Authenticated
	cfg.Email = s.Email
	cfg.Registrations = make([]config.Registration, 0, len(s.Registered))
	for _, rc := range s.Registered {
		cfg.Registrations = append(cfg.Registrations, config.Registration{
			CourseID:     rc.ID,
			RegisteredAt: rc.RegisteredAt,
		})
	}
}
