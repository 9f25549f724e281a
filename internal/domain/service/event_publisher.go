package service

import (
	"context"
)

// Order event types published on the order stream.
const (
	OrderEventCreated       = "order.created"
	OrderEventStatusUpdated = "order.status_updated"
)

// OrderEvent represents an order lifecycle event for downstream consumers
// (fulfillment dashboards, analytics). Publishing is best-effort: failures
// are logged, never surfaced to the buyer.
type OrderEvent struct {
	RequestID string  `json:"request_id,omitempty"` // For distributed tracing
	Type      string  `json:"type"`
	OrderID   string  `json:"order_id"`
	UserID    string  `json:"user_id"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
