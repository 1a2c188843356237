// Package config loads tool settings from .cropdb/config.json and the
// environment. Flags win over environment variables, which win over the
// config file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDBPath is used when neither flag, environment nor config name one.
const DefaultDBPath = "crop_db.sqlite"

// Environment variables recognized next to the config file. A .env file in
// the working directory is loaded into the environment at startup.
const (
	EnvDBPath    = "CROPDB_DB"
	EnvEppoToken = "CROPDB_EPPO_TOKEN"
	EnvEppoBase  = "CROPDB_EPPO_BASE_URL"
)

// Config represents the flat cropdb configuration.
type Config struct {
	Version     string `json:"version"`
	DBPath      string `json:"db_path,omitempty"`
	EppoBaseURL string `json:"eppo_base_url,omitempty"`
	EppoToken   string `json:"eppo_token,omitempty"`
}

// Load reads .cropdb/config.json from the specified directory.
// Returns an error if no config is found - callers that can work without one
// should use LoadOrDefault.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ".cropdb", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault reads the config file and falls back to an empty config when
// the file does not exist.
func LoadOrDefault(dir string) *Config {
	cfg, err := Load(dir)
	if err != nil {
		return &Config{}
	}
	return cfg
}

// Save writes config.json to the directory's .cropdb folder.
func Save(dir string, cfg *Config) error {
	cfgDir := filepath.Join(dir, ".cropdb")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create .cropdb dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(cfgDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ResolveDBPath returns the database path with flag > environment > config
// file > built-in default precedence.
func (c *Config) ResolveDBPath(flagValue string) string {
	return firstNonEmpty(flagValue, os.Getenv(EnvDBPath), c.DBPath, DefaultDBPath)
}

// ResolveEppoToken returns the EPPO API token, empty when nothing is set.
func (c *Config) ResolveEppoToken(flagValue string) string {
	return firstNonEmpty(flagValue, os.Getenv(EnvEppoToken), c.EppoToken)
}

// ResolveEppoBaseURL returns the EPPO API base URL; fallback is the client's
// production endpoint.
func (c *Config) ResolveEppoBaseURL(flagValue, fallback string) string {
	return firstNonEmpty(flagValue, os.Getenv(EnvEppoBase), c.EppoBaseURL, fallback)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
