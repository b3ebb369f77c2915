package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thenoetrevino/taskflow/internal/config"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"loud", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(&buf, "warn")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown", "task_id", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Info record should be filtered: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "task_id=3") {
		t.Errorf("Expected warn record with attrs, got: %s", out)
	}
}

func TestInit_WritesConfiguredFile(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	path := filepath.Join(t.TempDir(), "nested", "taskflow.log")
	closer, err := Init(config.LogConfig{Level: "debug", File: path})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	slog.Debug("hello from test")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("Log file missing record: %s", data)
	}
}

func TestInit_RejectsBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskflow.log")
	if _, err := Init(config.LogConfig{Level: "verbose", File: path}); err == nil {
		t.Error("Expected error for unknown level")
	}
}
