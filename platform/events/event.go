// Package events is the in-process publish/subscribe bus that decouples
// lead intake from notification delivery.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event is anything published on the bus.
type Event interface {
	// EventName is the routing key handlers subscribe to.
	EventName() string
	// EventID identifies one publication in logs.
	EventID() uuid.UUID
	OccurredAt() time.Time
}

// BaseEvent carries the id and timestamp every event shares. Embed it.
type BaseEvent struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func (e BaseEvent) EventID() uuid.UUID    { return e.ID }
func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }

// NewBaseEvent stamps a fresh id and the current time in UTC.
func NewBaseEvent() BaseEvent {
	return BaseEvent{ID: uuid.New(), Timestamp: time.Now().UTC()}
}

// Handler reacts to one event. Returned errors are logged by the bus.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc lets a plain function subscribe.
type HandlerFunc func(ctx context.Context, event Event) error

func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}
