// Package notifications fans order changes out to the customer's inbox and
// to the message broker. Delivery is best effort: failures are logged and
// never reach the caller, whose transaction has already committed.
package notifications

import (
	"context"
	"log/slog"
	"time"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/notification"
	"meatdelivery/internal/core/domain/model/order"
	"meatdelivery/internal/core/ports"
)

const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
)

var typeByStatus = map[order.Status]notification.Type{
	order.Pending:        notification.OrderPlaced,
	order.Confirmed:      notification.OrderConfirmed,
	order.Preparing:      notification.OrderPreparing,
	order.OutForDelivery: notification.OrderOutForDelivery,
	order.Delivered:      notification.OrderDelivered,
	order.Cancelled:      notification.OrderCancelled,
}

// Dispatcher implements commands.OrderNotifier.
type Dispatcher struct {
	store     ports.NotificationRepository
	publisher ports.EventPublisher
	now       func() time.Time
	logger    *slog.Logger
}

func NewDispatcher(store ports.NotificationRepository, publisher ports.EventPublisher, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		store:     store,
		publisher: publisher,
		now:       time.Now,
		logger:    logger.With("component", "notification_dispatcher"),
	}
}

// OrderChanged stores a notification for the order's customer matching the
// order's current status and publishes the corresponding integration event.
func (d *Dispatcher) OrderChanged(ctx context.Context, o *order.Order) {
	typ, ok := typeByStatus[o.Status()]
	if !ok {
		return
	}
	now := d.now()

	n, err := notification.New(kernel.NewUUID(), o.CustomerID(), typ, map[string]string{
		"orderId":     o.ID().String(),
		"orderNumber": o.Number(),
		"status":      o.Status().String(),
	}, now)
	if err != nil {
		d.logger.ErrorContext(ctx, "failed to build notification", "order_id", o.ID().String(), "error", err)
	} else if err = d.store.Add(ctx, n); err != nil {
		d.logger.ErrorContext(ctx, "failed to store notification", "order_id", o.ID().String(), "error", err)
	}

	event := ports.OrderEvent{
		Type:        EventOrderStatusChanged,
		OrderID:     o.ID().String(),
		OrderNumber: o.Number(),
		CustomerID:  o.CustomerID().String(),
		Status:      o.Status().String(),
		Total:       o.Pricing().Total.String(),
		OccurredAt:  now,
	}
	if o.Status() == order.Pending {
		event.Type = EventOrderPlaced
	}
	if courierID := o.AssignedTo(); courierID != nil {
		event.CourierID = courierID.String()
	}
	if err = d.publisher.Publish(ctx, event); err != nil {
		d.logger.ErrorContext(ctx, "failed to publish order event",
			"order_id", o.ID().String(), "event", event.Type, "error", err)
		return
	}
	d.logger.DebugContext(ctx, "order event published", "order_id", o.ID().String(), "event", event.Type)
}
