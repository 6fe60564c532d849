package service

import (
	"context"
	"time"
)

// Place event types.
const (
	PlaceEventCreated  = "place.created"
	PlaceEventUpdated  = "place.updated"
	PlaceEventArchived = "place.archived"
)

// PlaceEvent is emitted after a place has been changed.
type PlaceEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	PlaceID    string    `json:"place_id"`
	OwnerID    string    `json:"owner_id"`
	OwnerType  string    `json:"owner_type"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPlaceEvent publishes a place change event
	PublishPlaceEvent(ctx context.Context, event *PlaceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
