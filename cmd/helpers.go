package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/arendjr/phebe/embeds"
	"github.com/arendjr/phebe/internal/assets"
	"github.com/arendjr/phebe/internal/config"
	"github.com/arendjr/phebe/internal/content"
	"github.com/arendjr/phebe/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `phebe init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// openTree returns dir as a filesystem, or the embedded tree when dir is empty.
func openTree(dir string, embedded func() (fs.FS, error)) (fs.FS, error) {
	if dir == "" {
		return embedded()
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

type builtSite struct {
	registry *content.Registry
	assets   *assets.Assets
	cache    *site.Cache
	orphans  []string
}

// buildSite loads content and assets and renders every variant. Any
// failure here must stop the process before a port is bound.
func buildSite(cfg *config.Config) (*builtSite, error) {
	staticFS, err := openTree(cfg.StaticDir, embeds.Static)
	if err != nil {
		return nil, fmt.Errorf("opening static assets: %w", err)
	}
	a, err := assets.Load(staticFS)
	if err != nil {
		return nil, fmt.Errorf("loading static assets: %w", err)
	}

	contentFS, err := openTree(cfg.ContentDir, embeds.Content)
	if err != nil {
		return nil, fmt.Errorf("opening content: %w", err)
	}
	reg, err := content.Load(contentFS)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	orphans, err := reg.Unreferenced(contentFS)
	if err != nil {
		return nil, err
	}

	cache, err := site.Build(reg, a, site.Options{
		Title:       cfg.Site.Title,
		Author:      cfg.Site.Author,
		Description: cfg.Site.Description,
		URL:         cfg.Site.URL,
		Now:         time.Now(),
	})
	if err != nil {
		return nil, err
	}

	return &builtSite{registry: reg, assets: a, cache: cache, orphans: orphans}, nil
}
