package ports

import (
	"context"
	"time"
)

// OrderEvent is the integration event emitted when an order is placed or
// changes status.
type OrderEvent struct {
	Type        string    `json:"type"`
	OrderID     string    `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	CustomerID  string    `json:"customerId"`
	CourierID   string    `json:"courierId,omitempty"`
	Status      string    `json:"status"`
	Total       string    `json:"total"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// EventPublisher sends integration events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}
