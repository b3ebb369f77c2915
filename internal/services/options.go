// Package services holds the options shared by the task and project stores.
// The stores themselves live in the task and project subpackages.
package services

import (
	"time"

	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/latency"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// Options configures a store
type Options struct {
	Latency     *latency.Simulator
	Now         func() time.Time
	EventClient events.EventPublisher
}

// Option is a functional option for configuring a store
type Option func(*Options)

// WithLatency sets the simulated latency for every operation
func WithLatency(sim *latency.Simulator) Option {
	return func(o *Options) {
		o.Latency = sim
	}
}

// WithClock overrides the clock used for timestamps and "today"
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		o.Now = now
	}
}

// WithEventPublisher sets where change events are sent
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(o *Options) {
		o.EventClient = ec
	}
}

// Apply resolves opts over the defaults: no latency, wall clock, no events
func Apply(opts ...Option) Options {
	o := Options{
		Latency: latency.None(),
		Now:     time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Today returns the current calendar date according to o's clock
func (o Options) Today() models.Date {
	return models.DateOf(o.Now())
}
