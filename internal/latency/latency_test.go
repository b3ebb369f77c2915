package latency

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDelay_Scaled(t *testing.T) {
	s := New(0.5)
	if got := s.Delay(Create); got != 200*time.Millisecond {
		t.Errorf("Delay(Create) = %v, want 200ms", got)
	}
	if got := s.Delay(Lookup); got != 100*time.Millisecond {
		t.Errorf("Delay(Lookup) = %v, want 100ms", got)
	}
}

func TestDelay_Disabled(t *testing.T) {
	var nilSim *Simulator
	for _, s := range []*Simulator{None(), New(0), New(-1), nilSim} {
		if d := s.Delay(BulkWrite); d != 0 {
			t.Errorf("expected zero delay, got %v", d)
		}
	}
}

func TestWait_Cancelled(t *testing.T) {
	s := New(10) // 2s+ per op, never reached
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Wait(ctx, Lookup); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() = %v, want context.Canceled", err)
	}
}

func TestWait_NoDelayStillHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	if err := None().Wait(ctx, Scan); err != nil {
		t.Errorf("Wait() = %v, want nil", err)
	}
	cancel()
	if err := None().Wait(ctx, Scan); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() after cancel = %v, want context.Canceled", err)
	}
}

func TestWait_Elapses(t *testing.T) {
	s := New(0.01) // 2ms lookup
	start := time.Now()
	if err := s.Wait(context.Background(), Lookup); err != nil {
		t.Fatalf("Wait() = %v", err)
	}
	if elapsed := time.Since(start); elapsed < 2*time.Millisecond {
		t.Errorf("Wait returned after %v, want >= 2ms", elapsed)
	}
}
