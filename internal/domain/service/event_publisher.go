package service

import (
	"context"
	"time"
)

// AdminEvent represents a console mutation published for downstream
// consumers (audit trail, cache invalidation, notification fan-out).
type AdminEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventType  string    `json:"event_type"`           // e.g. "reward.created", "merchant.deleted"
	MerchantID string    `json:"merchant_id,omitempty"`
	CustomerID string    `json:"customer_id,omitempty"`
	EntityID   string    `json:"entity_id,omitempty"`
	Actor      string    `json:"actor,omitempty"` // admin id
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing admin events to a
// message queue.
type EventPublisher interface {
	// PublishAdminEvent publishes a mutation event for async processing.
	PublishAdminEvent(ctx context.Context, event *AdminEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
