package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/config"
	"github.com/thenoetrevino/taskflow/internal/latency"
	"github.com/thenoetrevino/taskflow/internal/logging"
)

// CLI represents the CLI application context: one in-memory session
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	logCloser io.Closer
	owned     bool // Close releases App only when this CLI created it
}

// NewCLI loads the seed selected by cfg and starts a fresh session
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	logCloser, err := logging.Init(cfg.Log)
	if err != nil {
		// Logging is best effort; commands still work without a log file
		slog.SetDefault(logging.Discard())
		logCloser = nil
	}

	now := time.Now()
	data, err := app.LoadSeed(ctx, cfg, now)
	if err != nil {
		if logCloser != nil {
			_ = logCloser.Close()
		}
		return nil, fmt.Errorf("failed to load seed data: %w", err)
	}

	application := app.New(data,
		app.WithLatency(latency.New(cfg.LatencyScale())),
		app.WithLogger(slog.Default()),
	)

	return &CLI{
		App:       application,
		Config:    cfg,
		logCloser: logCloser,
		owned:     true,
	}, nil
}

// FromApp wraps an existing app. Close leaves the app open.
func FromApp(a *app.App) *CLI {
	return &CLI{App: a, Config: config.Default()}
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	err := c.App.Close()
	if c.logCloser != nil {
		if closeErr := c.logCloser.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}
