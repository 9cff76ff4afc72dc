// Package ports defines the contracts between the domain core and the
// adapters: repositories, the unit of work and outbound messaging.
package ports

import (
	"context"

	"meatdelivery/internal/core/domain/model/courier"
	"meatdelivery/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier. A duplicate phone number is a conflict.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists status, availability, approval and statistics.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier by id. Returns errs.ErrObjectNotFound when missing.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)
}
