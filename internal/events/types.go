package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventTaskCreated    EventType = "task_created"
	EventTaskUpdated    EventType = "task_updated"
	EventTaskDeleted    EventType = "task_deleted"
	EventProjectCreated EventType = "project_created"
	EventProjectUpdated EventType = "project_updated"
	EventProjectDeleted EventType = "project_deleted"
)

// Event is a change notification for a single record
type Event struct {
	ID         string    // Unique event id, assigned by the bus
	Type       EventType
	EntityID   int       // Id of the task or project that changed
	ProjectID  int       // Project the change belongs to, 0 if none
	Timestamp  time.Time // When the event was accepted by the bus
	SequenceID int64     // Monotonically increasing sequence number for ordering
}

// IsTaskEvent reports whether the event concerns a task
func (e Event) IsTaskEvent() bool {
	switch e.Type {
	case EventTaskCreated, EventTaskUpdated, EventTaskDeleted:
		return true
	}
	return false
}
