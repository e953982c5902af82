/*
Package config handles loading and saving quickbites configuration.

Configuration is stored in ~/.quickbites.json:

  {
    "paths": {
      "menu": "/path/to/menu.csv",
      "database": "/path/to/quickbites.db",
      "boosts": "/path/to/boosts.json",
      "cartRules": "/path/to/cart_rules.json"
    },
    "settings": {
      "defaultLimit": 10,
      "similarityTopN": 20,
      "taxRate": 0.05,
      "semanticWeight": 0.7,
      "keywordWeight": 0.3
    }
  }
*/
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	// Paths locates the data files.
	Paths *Paths `json:"paths,omitempty"`

	// Settings contains tunable options.
	Settings *Settings `json:"settings,omitempty"`
}

// Paths locates the data files used by the application.
type Paths struct {
	// Menu is the menu dataset CSV.
	Menu string `json:"menu,omitempty"`

	// Database is the SQLite ratings database.
	Database string `json:"database,omitempty"`

	// Boosts optionally overrides the built-in boost tables.
	Boosts string `json:"boosts,omitempty"`

	// CartRules is the smart-cart suggestion rules file.
	CartRules string `json:"cartRules,omitempty"`
}

// Settings contains tunable options.
type Settings struct {
	// DefaultLimit bounds recommendation results when unset.
	DefaultLimit int `json:"defaultLimit,omitempty"`

	// SimilarityTopN bounds the similarity pass of the query boost.
	SimilarityTopN int `json:"similarityTopN,omitempty"`

	// TaxRate applies to order totals (0.05 = 5%).
	TaxRate float64 `json:"taxRate,omitempty"`

	// SemanticWeight and KeywordWeight tune hybrid search fusion.
	SemanticWeight float64 `json:"semanticWeight,omitempty"`
	KeywordWeight  float64 `json:"keywordWeight,omitempty"`
}

// NewConfig creates a configuration with defaults filled in.
func NewConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dataDir := filepath.Join(home, ".quickbites")

	return &Config{
		Paths: &Paths{
			Menu:      filepath.Join(dataDir, "menu.csv"),
			Database:  filepath.Join(dataDir, "quickbites.db"),
			Boosts:    filepath.Join(dataDir, "boosts.json"),
			CartRules: filepath.Join(dataDir, "cart_rules.json"),
		},
		Settings: &Settings{
			DefaultLimit:   10,
			SimilarityTopN: 20,
			TaxRate:        0.05,
			SemanticWeight: 0.7,
			KeywordWeight:  0.3,
		},
	}
}

// DefaultConfigPath returns the path to ~/.quickbites.json.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".quickbites.json"), nil
}

// Load reads the configuration from the default path. A missing file
// yields the defaults, not an error.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return NewConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from a specific path. A missing
// file yields the defaults, not an error.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// Partial files keep defaults for whatever they omit.
	defaults := NewConfig()
	if cfg.Paths == nil {
		cfg.Paths = defaults.Paths
	}
	if cfg.Settings == nil {
		cfg.Settings = defaults.Settings
	}
	if cfg.Settings.DefaultLimit <= 0 {
		cfg.Settings.DefaultLimit = defaults.Settings.DefaultLimit
	}
	if cfg.Settings.SimilarityTopN <= 0 {
		cfg.Settings.SimilarityTopN = defaults.Settings.SimilarityTopN
	}
	if cfg.Settings.TaxRate <= 0 {
		cfg.Settings.TaxRate = defaults.Settings.TaxRate
	}
	if cfg.Settings.SemanticWeight <= 0 && cfg.Settings.KeywordWeight <= 0 {
		cfg.Settings.SemanticWeight = defaults.Settings.SemanticWeight
		cfg.Settings.KeywordWeight = defaults.Settings.KeywordWeight
	}

	return cfg, nil
}

// Save writes the configuration to a path.
func Save(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
