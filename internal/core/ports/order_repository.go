package ports

import (
	"context"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its items and history.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, history, delivery and payment of an order that
	// was loaded in status from. When the stored status is no longer from it
	// returns order.ErrOrderChanged and nothing is written.
	Update(ctx context.Context, aggregate *order.Order, from order.Status) error

	// UpdateIfUnassigned persists an order that was just confirmed for a
	// courier, but only while the stored row is still pending and unassigned.
	// When another writer got there first it returns order.ErrOrderAlreadyAssigned
	// and nothing is written.
	//
	// Example:
	//   if err := o.Confirm(courierID, courierID, now); err != nil {
	//       return err
	//   }
	//   err := repo.UpdateIfUnassigned(ctx, o)
	//   if errors.Is(err, order.ErrOrderAlreadyAssigned) {
	//       // lost the race, report a conflict to the courier
	//   }
	UpdateIfUnassigned(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. Returns errs.ErrObjectNotFound when missing.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindActiveByCourier returns the courier's order in confirmed, preparing or
	// out-for-delivery status, or nil when the courier is free.
	FindActiveByCourier(ctx context.Context, courierID kernel.UUID) (*order.Order, error)

	// ListDeliveredByCourier returns up to limit delivered orders of the
	// courier, most recently delivered first.
	ListDeliveredByCourier(ctx context.Context, courierID kernel.UUID, limit int) ([]*order.Order, error)
}
