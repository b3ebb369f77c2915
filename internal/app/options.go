package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/latency"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	bus     *events.Bus
	logger  *slog.Logger
	latency *latency.Simulator
	now     func() time.Time
}

// WithEventBus shares an existing bus instead of creating one
func WithEventBus(bus *events.Bus) Option {
	return func(cfg *appConfig) {
		cfg.bus = bus
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithLatency sets the delay simulator shared by both stores
func WithLatency(sim *latency.Simulator) Option {
	return func(cfg *appConfig) {
		cfg.latency = sim
	}
}

// WithClock overrides the time source used for "now" and "today"
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.now = now
	}
}
