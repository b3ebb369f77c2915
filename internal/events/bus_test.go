package events

import (
	"context"
	"errors"
	"testing"
	"time"
)

func receive(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case e, ok := <-ch:
		if !ok {
			t.Fatal("channel closed unexpectedly")
		}
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func TestBus_FanOut(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	defer func() { _ = bus.Close() }()

	ctx := context.Background()
	a, err := bus.Listen(ctx)
	if err != nil {
		t.Fatalf("Listen failed: %v", err)
	}
	b, err := bus.Listen(ctx)
	if err != nil {
		t.Fatalf("Listen failed: %v", err)
	}

	if err := bus.SendEvent(Event{Type: EventTaskCreated, EntityID: 4}); err != nil {
		t.Fatalf("SendEvent failed: %v", err)
	}

	for _, ch := range []<-chan Event{a, b} {
		e := receive(t, ch)
		if e.Type != EventTaskCreated || e.EntityID != 4 {
			t.Errorf("unexpected event %+v", e)
		}
		if e.ID == "" {
			t.Error("expected event id to be assigned")
		}
		if e.SequenceID != 1 {
			t.Errorf("SequenceID = %d, want 1", e.SequenceID)
		}
		if e.Timestamp.IsZero() {
			t.Error("expected timestamp to be set")
		}
	}
}

func TestBus_SequenceIncreases(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	ch, _ := bus.Listen(context.Background())

	for i := 0; i < 3; i++ {
		_ = bus.SendEvent(Event{Type: EventTaskUpdated, EntityID: i})
	}

	var last int64
	for i := 0; i < 3; i++ {
		e := receive(t, ch)
		if e.SequenceID <= last {
			t.Errorf("sequence not increasing: %d after %d", e.SequenceID, last)
		}
		last = e.SequenceID
	}
	if bus.Sequence() != 3 {
		t.Errorf("Sequence() = %d, want 3", bus.Sequence())
	}
}

func TestBus_SlowListenerDrops(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	bus.bufSize = 1
	_, _ = bus.Listen(context.Background())

	_ = bus.SendEvent(Event{Type: EventTaskDeleted})
	_ = bus.SendEvent(Event{Type: EventTaskDeleted})

	if bus.Dropped() != 1 {
		t.Errorf("Dropped() = %d, want 1", bus.Dropped())
	}
}

func TestBus_ListenerRemovedOnCancel(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	ctx, cancel := context.WithCancel(context.Background())
	ch, _ := bus.Listen(ctx)
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected closed channel after cancel")
		}
	case <-time.After(time.Second):
		t.Fatal("listener channel was not closed after cancel")
	}
}

func TestBus_Closed(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	_ = bus.Close()

	if err := bus.SendEvent(Event{}); !errors.Is(err, ErrBusClosed) {
		t.Errorf("SendEvent after close = %v, want ErrBusClosed", err)
	}
	if _, err := bus.Listen(context.Background()); !errors.Is(err, ErrBusClosed) {
		t.Errorf("Listen after close = %v, want ErrBusClosed", err)
	}
	if err := bus.Close(); err != nil {
		t.Errorf("second Close = %v, want nil", err)
	}
}

func TestPublish_NilClient(t *testing.T) {
	t.Parallel()
	// Must not panic
	Publish(nil, Event{Type: EventProjectCreated})
}

func TestEvent_IsTaskEvent(t *testing.T) {
	t.Parallel()

	if !(Event{Type: EventTaskUpdated}).IsTaskEvent() {
		t.Error("task_updated should be a task event")
	}
	if (Event{Type: EventProjectDeleted}).IsTaskEvent() {
		t.Error("project_deleted should not be a task event")
	}
}
