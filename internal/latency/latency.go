// Package latency simulates the response time of a remote API so that the
// in-memory stores behave like asynchronous service calls.
package latency

import (
	"context"
	"time"
)

// Kind classifies an operation by the delay it is given
type Kind int

const (
	Lookup     Kind = iota // single-record read
	Query                  // filtered read
	Scan                   // full-collection read
	Write                  // update
	Create                 // insert
	Remove                 // delete
	BulkWrite              // batch update
	BulkRemove             // batch delete
)

var baseDelays = map[Kind]time.Duration{
	Lookup:     200 * time.Millisecond,
	Query:      250 * time.Millisecond,
	Scan:       300 * time.Millisecond,
	Write:      300 * time.Millisecond,
	Create:     400 * time.Millisecond,
	Remove:     250 * time.Millisecond,
	BulkWrite:  400 * time.Millisecond,
	BulkRemove: 350 * time.Millisecond,
}

// Simulator delays operations before they take effect.
// A nil *Simulator never waits.
type Simulator struct {
	scale float64
}

// New returns a simulator whose base delays are multiplied by scale.
// A scale of 0 or less disables waiting entirely.
func New(scale float64) *Simulator {
	return &Simulator{scale: scale}
}

// None returns a simulator that never waits
func None() *Simulator {
	return &Simulator{}
}

// Delay returns how long an operation of the given kind waits
func (s *Simulator) Delay(k Kind) time.Duration {
	if s == nil || s.scale <= 0 {
		return 0
	}
	return time.Duration(float64(baseDelays[k]) * s.scale)
}

// Wait blocks for the kind's delay. It returns ctx.Err() if the context is
// done first, in which case the caller must not apply its effect.
func (s *Simulator) Wait(ctx context.Context, k Kind) error {
	d := s.Delay(k)
	if d == 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
