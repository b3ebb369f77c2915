package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	configDir := filepath.Join(dir, "taskflow")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	path := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvSeedFile, "")
	t.Setenv(EnvNoLatency, "")
	t.Setenv(EnvThemeFile, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.LatencyScale() != DefaultLatencyScale {
		t.Errorf("LatencyScale() = %v, want %v", cfg.LatencyScale(), DefaultLatencyScale)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Seed.File != "" || cfg.Seed.SQLite != "" {
		t.Errorf("Expected embedded seed, got %+v", cfg.Seed)
	}
	if cfg.ColorScheme.Accent != DefaultColorScheme().Accent {
		t.Errorf("Accent = %s, want default", cfg.ColorScheme.Accent)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(EnvSeedFile, "")
	t.Setenv(EnvNoLatency, "")
	t.Setenv(EnvThemeFile, "")

	writeConfig(t, tempDir, `latency:
  scale: 0.5
seed:
  file: /tmp/fixtures.yaml
log:
  level: debug
theme:
  preset: monochrome
  accent: "#123456"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.LatencyScale() != 0.5 {
		t.Errorf("LatencyScale() = %v, want 0.5", cfg.LatencyScale())
	}
	if cfg.Seed.File != "/tmp/fixtures.yaml" {
		t.Errorf("Seed.File = %q", cfg.Seed.File)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}

	// Custom value wins, the rest comes from the preset
	if cfg.ColorScheme.Accent != "#123456" {
		t.Errorf("Accent = %s, want #123456", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Title != MonochromeColorScheme().Title {
		t.Errorf("Title = %s, want monochrome preset", cfg.ColorScheme.Title)
	}
}

func TestLoadConfig_ZeroScaleDisablesLatency(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv(EnvNoLatency, "")
	t.Setenv(EnvSeedFile, "")
	path := writeConfig(t, tempDir, "latency:\n  scale: 0\n")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if cfg.LatencyScale() != 0 {
		t.Errorf("LatencyScale() = %v, want 0", cfg.LatencyScale())
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	tempDir := t.TempDir()
	path := writeConfig(t, tempDir, "seed:\n  file: from-file.yaml\n")
	t.Setenv(EnvSeedFile, "from-env.yaml")
	t.Setenv(EnvNoLatency, "1")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if cfg.Seed.File != "from-env.yaml" {
		t.Errorf("Seed.File = %q, want env override", cfg.Seed.File)
	}
	if cfg.LatencyScale() != 0 {
		t.Errorf("Expected %s to disable latency, got scale %v", EnvNoLatency, cfg.LatencyScale())
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "latency: [unclosed\n")
	if _, err := LoadFrom(path); err == nil {
		t.Error("Expected parse error for invalid YAML")
	}
}

func TestThemeFileLoading(t *testing.T) {
	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	themeContent := []byte(`theme:
  accent: "#FF0000"
  priority_high: "#00FF00"
`)
	if err := os.WriteFile(themePath, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv(EnvThemeFile, themePath)

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.PriorityHigh != "#00FF00" {
		t.Errorf("Expected priority_high to be #00FF00, got %s", cfg.ColorScheme.PriorityHigh)
	}
	if cfg.ColorScheme.Error == "" {
		t.Error("Expected error color to have default value")
	}
}

func TestSaveConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(EnvSeedFile, "")
	t.Setenv(EnvNoLatency, "")
	t.Setenv(EnvThemeFile, "")

	cfg := Default()
	cfg.Seed.SQLite = "/data/fixtures.db"
	cfg.DisableLatency()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(tempDir, "taskflow", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}
	if cfg2.Seed.SQLite != "/data/fixtures.db" {
		t.Errorf("Reloaded Seed.SQLite = %q", cfg2.Seed.SQLite)
	}
	if cfg2.LatencyScale() != 0 {
		t.Errorf("Reloaded LatencyScale() = %v, want 0", cfg2.LatencyScale())
	}
}
