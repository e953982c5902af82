package cli

import (
	"fmt"

	"github.com/quickbites/quickbites/internal/catalog"
	"github.com/quickbites/quickbites/internal/config"
	"github.com/quickbites/quickbites/internal/similarity"
)

// loadConfig reads the user configuration, falling back to defaults
// when no file exists.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.NewConfig()
	}
	return cfg
}

// loadCatalog loads the menu CSV named by the configuration. A missing
// or unreadable file yields an empty catalog and a warning so commands
// can still run.
func loadCatalog(cfg *config.Config) *catalog.Store {
	store, err := catalog.Load(cfg.Paths.Menu)
	if err != nil {
		fmt.Printf("Warning: could not load menu from %s: %v\n", cfg.Paths.Menu, err)
	}
	return store
}

// newSimilarityEngine builds the text similarity engine, degrading to
// the basic analyzer when the full one fails to initialize.
func newSimilarityEngine() *similarity.Engine {
	sim, err := similarity.NewEngine()
	if err == nil {
		return sim
	}
	sim, err = similarity.NewBasicEngine()
	if err != nil {
		fmt.Printf("Warning: text similarity unavailable: %v\n", err)
		return nil
	}
	return sim
}
