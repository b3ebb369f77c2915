package events

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultBufferSize is the per-listener channel capacity
const DefaultBufferSize = 64

// Bus is an in-process fan-out of change events. Each listener gets its own
// buffered channel; events for a listener whose buffer is full are dropped
// and counted rather than blocking the publisher.
type Bus struct {
	mu        sync.Mutex
	listeners map[int]chan Event
	nextID    int
	sequence  int64
	metrics   *Metrics
	closed    bool
	bufSize   int
	now       func() time.Time
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[int]chan Event),
		metrics:   NewMetrics(),
		bufSize:   DefaultBufferSize,
		now:       time.Now,
	}
}

// SendEvent stamps the event with an id, timestamp and sequence number and
// delivers it to every listener.
func (b *Bus) SendEvent(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBusClosed
	}

	b.sequence++
	event.SequenceID = b.sequence
	event.ID = uuid.NewString()
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}

	b.metrics.Published.Add(1)
	for _, ch := range b.listeners {
		select {
		case ch <- event:
			b.metrics.Delivered.Add(1)
		default:
			b.metrics.Dropped.Add(1)
		}
	}
	return nil
}

// Listen registers a listener until ctx is done
func (b *Bus) Listen(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrBusClosed
	}

	id := b.nextID
	b.nextID++
	ch := make(chan Event, b.bufSize)
	b.listeners[id] = ch
	b.metrics.Listeners.Add(1)

	go func() {
		<-ctx.Done()
		b.remove(id)
	}()

	return ch, nil
}

// Dropped returns how many deliveries were skipped because a listener was full
func (b *Bus) Dropped() int64 {
	return b.metrics.Dropped.Load()
}

// Stats returns a snapshot of the bus counters
func (b *Bus) Stats() MetricsSnapshot {
	return b.metrics.Snapshot()
}

// Sequence returns the sequence number of the last accepted event
func (b *Bus) Sequence() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sequence
}

// Close closes every listener channel. Further sends fail with ErrBusClosed.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for id, ch := range b.listeners {
		close(ch)
		delete(b.listeners, id)
		b.metrics.Listeners.Add(-1)
	}
	return nil
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.listeners[id]; ok {
		close(ch)
		delete(b.listeners, id)
		b.metrics.Listeners.Add(-1)
	}
}
