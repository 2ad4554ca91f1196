package events

// EventPublisher accepts events for delivery.
// Services depend on this rather than on the broker so they can run without one.
type EventPublisher interface {
	SendEvent(event Event) error
}

// Compile-time verification that *Broker implements EventPublisher
var _ EventPublisher = (*Broker)(nil)
