package cmd

import (
	"fmt"

	"regctl/pkg/catalog"
	"regctl/pkg/config"
	"regctl/pkg/render"
	"regctl/pkg/session"

	"github.com/charmbracelet/huh/spinner"
)

// workspace bundles what every command needs: settings, catalog and the
// session rebuilt from them.
type workspace struct {
	cfg     *config.AppConfig
	catalog *catalog.Catalog
	state   session.State
}

func loadWorkspace() (*workspace, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	render.SetAccent(cfg.AccentColor)

	cat, err := loadCatalog(cfg.CatalogSource)
	if err != nil {
		return nil, err
	}

	state, stale := session.FromConfig(cfg, cat)
	for _, id := range stale {
		log.Warn().Str("course_id", id).Msg("registered course is no longer in the catalog, dropping it")
	}

	return &workspace{cfg: cfg, catalog: cat, state: state}, nil
}

func loadCatalog(source string) (*catalog.Catalog, error) {
	client := catalog.NewClient(log)
	if !catalog.IsURL(source) {
		return client.Load(source)
	}

	var cat *catalog.Catalog
	var err error
	_ = spinner.New().
		Title("Fetching course catalog...").
		Action(func() {
			cat, err = client.Load(source)
		}).
		Run()

	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}

// save persists the workspace's session into the settings file.
func (w *workspace) save() error {
	session.ApplyTo(w.cfg, w.state)
	return config.Save(w.cfg)
}

func (w *workspace) requireLogin() error {
	if !w.state.Authenticated {
		return fmt.Errorf("%w. Please run 'regctl login' first", session.ErrNotAuthenticated)
	}
	return nil
}
