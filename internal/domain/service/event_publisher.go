package service

import (
	"context"
	"time"
)

// ClickEvent is emitted after a click has been recorded, for downstream consumers.
type ClickEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	EventID   string    `json:"event_id"`
	ItemID    string    `json:"item_id"`
	ItemType  string    `json:"item_type"`
	UserID    string    `json:"user_id"`
	ClickedAt time.Time `json:"clicked_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishClickEvent publishes a recorded click
	PublishClickEvent(ctx context.Context, event *ClickEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
