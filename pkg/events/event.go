package events

import (
	"context"
	"time"
)

const (
	CommunicationCreated       = "COMMUNICATION_CREATED"
	CommunicationConfigUpdated = "COMMUNICATION_CONFIG_UPDATED"
	PromptGenerated            = "PROMPT_GENERATED"
)

// Event defines the contract for all domain events.
type Event interface {
	// EventType returns the unique code for this event (e.g. "PROMPT_GENERATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now().UTC()}
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Publisher sends events to whatever bus is configured.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher drops every event. Used when no bus is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
