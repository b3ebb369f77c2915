package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvSeedFile  = "TASKFLOW_SEED_FILE"
	EnvNoLatency = "TASKFLOW_NO_LATENCY"
	EnvThemeFile = "TASKFLOW_THEME_FILE"
)

// DefaultLatencyScale keeps the simulated delays at their base values
const DefaultLatencyScale = 1.0

// Config represents the application configuration
type Config struct {
	Latency     LatencyConfig `yaml:"latency"`
	Seed        SeedConfig    `yaml:"seed"`
	Log         LogConfig     `yaml:"log"`
	ColorScheme ColorScheme   `yaml:"theme"`
}

// LatencyConfig controls the simulated service delay
type LatencyConfig struct {
	// Scale multiplies every base delay. Nil means DefaultLatencyScale, 0 disables.
	Scale *float64 `yaml:"scale,omitempty"`
}

// SeedConfig selects where the stores get their initial data
type SeedConfig struct {
	File   string `yaml:"file,omitempty"`   // YAML fixture file; empty means embedded fixtures
	SQLite string `yaml:"sqlite,omitempty"` // SQLite fixture database, takes precedence over File
}

// LogConfig controls the slog file handler
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LatencyScale returns the configured scale, applying the default
func (c *Config) LatencyScale() float64 {
	if c.Latency.Scale == nil {
		return DefaultLatencyScale
	}
	return *c.Latency.Scale
}

// DisableLatency turns the simulated delay off
func (c *Config) DisableLatency() {
	zero := 0.0
	c.Latency.Scale = &zero
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		slog.Debug("no config path", "error", err)
		cfg := Default()
		applyEnv(cfg)
		return cfg, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from path. A missing file yields the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults only
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	cfg.applyDefaults()
	return cfg, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path Load reads from
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "taskflow", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "taskflow", "config.yaml"), nil
}

// applyEnv layers environment overrides on top of the file values
func applyEnv(c *Config) {
	if seedFile := os.Getenv(EnvSeedFile); seedFile != "" {
		c.Seed.File = seedFile
	}
	if v := os.Getenv(EnvNoLatency); v == "1" || v == "true" {
		c.DisableLatency()
	}
	loadThemeFile(c)
}

// loadThemeFile merges the theme from TASKFLOW_THEME_FILE if set
func loadThemeFile(c *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("failed to read theme file", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}
	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		slog.Warn("failed to parse theme file", "path", themeFile, "error", err)
		return
	}
	c.ColorScheme.MergeFrom(themeConfig.Theme)
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.ColorScheme.ApplyDefaults()
}
