package events

import "log/slog"

// Publish sends event through client, tolerating a nil client.
// Failures are logged, never returned: a lost notification must not fail
// the mutation that produced it.
func Publish(client EventPublisher, event Event) {
	if client == nil {
		return
	}

	if err := client.SendEvent(event); err != nil {
		slog.Warn("event publish failed",
			"event_type", event.Type,
			"entity_id", event.EntityID,
			"error", err)
	}
}
