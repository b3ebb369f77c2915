package events

import (
	"sync/atomic"
	"time"
)

// Metrics tracks bus statistics using atomic operations for thread-safety
type Metrics struct {
	Published atomic.Int64 // events accepted by the bus
	Delivered atomic.Int64 // listener deliveries that fit the buffer
	Dropped   atomic.Int64 // listener deliveries skipped on a full buffer
	Listeners atomic.Int32
	StartTime time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	Published int64     `json:"published"`
	Delivered int64     `json:"delivered"`
	Dropped   int64     `json:"dropped"`
	Listeners int32     `json:"listeners"`
	StartTime time.Time `json:"startTime"`
	Uptime    string    `json:"uptime"`
}

// Snapshot returns a snapshot of current metrics
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Published: m.Published.Load(),
		Delivered: m.Delivered.Load(),
		Dropped:   m.Dropped.Load(),
		Listeners: m.Listeners.Load(),
		StartTime: m.StartTime,
		Uptime:    time.Since(m.StartTime).Round(time.Millisecond).String(),
	}
}
