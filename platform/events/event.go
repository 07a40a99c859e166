// Package events carries domain changes between modules in-process. A lead
// submission publishes an event; the notification module subscribes without
// either side importing the other.
package events

import (
	"context"
	"time"
)

// Event is a fact that has already happened in the domain.
type Event interface {
	// EventName identifies the event type for subscription routing.
	EventName() string
	// OccurredAt reports when the event took place.
	OccurredAt() time.Time
}

// BaseEvent carries the timestamp shared by every event type.
type BaseEvent struct {
	Timestamp time.Time `json:"timestamp"`
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// NewBaseEvent stamps an event with the current time.
func NewBaseEvent() BaseEvent {
	return BaseEvent{Timestamp: time.Now()}
}

// Handler reacts to published events.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(ctx context.Context, event Event) error

func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Bus publishes domain events to subscribed handlers. Publishing is
// fire-and-forget: delivery failures surface in logs, never to the
// publisher.
type Bus interface {
	// Publish dispatches the event to every handler subscribed to its name.
	Publish(ctx context.Context, event Event)

	// Subscribe registers a handler under an event name, matched against
	// Event.EventName at publish time.
	Subscribe(eventName string, handler Handler)
}
