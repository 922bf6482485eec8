package cmd

import (
	"fmt"
	"os"

	"github.com/circuitstrategies/circuitbot/internal/catalog"
	"github.com/circuitstrategies/circuitbot/internal/config"
	"github.com/circuitstrategies/circuitbot/internal/dispatcher"
	"github.com/circuitstrategies/circuitbot/internal/services"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `circuitbot init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadCatalog returns the catalog_file catalog when configured, otherwise
// the built-in one.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogFile == "" {
		return catalog.Load()
	}
	c, err := catalog.LoadFile(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	logVerbose("Loaded %d categories from %s\n", c.Len(), cfg.CatalogFile)
	return c, nil
}

// newDispatcher builds a dispatcher over the configured catalog.
func newDispatcher(cfg *config.Config) (*dispatcher.Dispatcher, error) {
	c, err := loadCatalog(cfg)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return dispatcher.New(c), nil
}

// loadServices returns the built-in service registry with content_dir
// files layered on top.
func loadServices(cfg *config.Config) (*services.Registry, error) {
	reg, err := services.LoadBuiltin()
	if err != nil {
		return nil, fmt.Errorf("loading builtin services: %w", err)
	}
	if cfg.ContentDir == "" {
		return reg, nil
	}

	overlay, err := services.LoadDir(cfg.ContentDir, cfg.ContentInclude)
	if err != nil {
		return nil, fmt.Errorf("loading service content: %w", err)
	}
	logVerbose("Loaded %d service pages from %s\n", len(overlay), cfg.ContentDir)
	return reg.Merge(overlay), nil
}

func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
