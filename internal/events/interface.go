package events

import "context"

// EventPublisher is what the stores depend on to announce changes.
// Implementations must be safe for concurrent use.
type EventPublisher interface {
	// SendEvent announces a change; it never blocks on slow listeners
	SendEvent(event Event) error
}

// EventSource hands out change streams to listeners
type EventSource interface {
	// Listen returns a channel of events that is closed when ctx is done
	// or the source is closed
	Listen(ctx context.Context) (<-chan Event, error)
}

// Compile-time verification that *Bus implements both sides
var (
	_ EventPublisher = (*Bus)(nil)
	_ EventSource    = (*Bus)(nil)
)
