// Package config loads the swatchbook configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the full application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Catalog CatalogConfig `yaml:"catalog"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	ListenAddr string  `yaml:"listen_addr"`
	RateLimit  float64 `yaml:"rate_limit"`
	RateBurst  int     `yaml:"rate_burst"`
}

// CatalogConfig contains catalog build and persistence settings.
type CatalogConfig struct {
	Size   int    `yaml:"size"`
	DBPath string `yaml:"db_path"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr: ":8080",
			RateLimit:  50,
			RateBurst:  100,
		},
		Catalog: CatalogConfig{
			Size:   200,
			DBPath: "swatchbook.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads and parses the config file at path, applying defaults for any
// unset fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault tries to load the given config file, falling back to the
// defaults when the file does not exist. A file that exists but fails to
// parse is still an error.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("server.listen_addr must not be empty")
	}
	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("server.rate_limit must be positive")
	}
	if c.Server.RateBurst <= 0 {
		return fmt.Errorf("server.rate_burst must be positive")
	}
	if c.Catalog.Size <= 0 {
		return fmt.Errorf("catalog.size must be positive")
	}
	switch c.Log.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of trace, debug, info, warn, error (got %q)", c.Log.Level)
	}
	return nil
}
