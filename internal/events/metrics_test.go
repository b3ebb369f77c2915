package events

import (
	"context"
	"sync"
	"testing"
	"time"
)

// ============================================================================
// Basic Metrics Tests
// ============================================================================

func TestNewMetrics(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	s := m.Snapshot()

	if s.Published != 0 || s.Delivered != 0 || s.Dropped != 0 || s.Listeners != 0 {
		t.Errorf("Expected zero counters, got %+v", s)
	}
	if time.Since(m.StartTime) > time.Second {
		t.Errorf("Expected StartTime to be recent, got %v", m.StartTime)
	}
}

func TestMetrics_ConcurrentIncrements(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				m.Published.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := m.Snapshot().Published; got != 1000 {
		t.Errorf("Expected 1000 published, got %d", got)
	}
}

// ============================================================================
// Bus Integration
// ============================================================================

func TestBus_Stats(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	bus.bufSize = 1

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_, _ = bus.Listen(ctx)
	_, _ = bus.Listen(context.Background())

	_ = bus.SendEvent(Event{Type: EventTaskCreated})
	_ = bus.SendEvent(Event{Type: EventTaskUpdated})

	s := bus.Stats()
	if s.Published != 2 {
		t.Errorf("Published = %d, want 2", s.Published)
	}
	if s.Delivered != 2 || s.Dropped != 2 {
		t.Errorf("Delivered/Dropped = %d/%d, want 2/2", s.Delivered, s.Dropped)
	}
	if s.Listeners != 2 {
		t.Errorf("Listeners = %d, want 2", s.Listeners)
	}

	if err := bus.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if got := bus.Stats().Listeners; got != 0 {
		t.Errorf("Listeners after Close = %d, want 0", got)
	}
}
