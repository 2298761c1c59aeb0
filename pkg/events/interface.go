package events

import (
	"context"
	"time"
)

type EventType string

const (
	CarCreated EventType = "car.created"
	CarUpdated EventType = "car.updated"
	CarDeleted EventType = "car.deleted"
)

// Publisher announces inventory changes to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, event *InventoryEvent) error
	Close() error
}

type InventoryEvent struct {
	Type       EventType `json:"type"`
	Category   string    `json:"category"`
	ID         string    `json:"id"`
	Model      string    `json:"model,omitempty"`
	Stock      *int      `json:"stock,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (NoopPublisher) Publish(ctx context.Context, event *InventoryEvent) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
