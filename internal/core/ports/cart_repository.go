package ports

import (
	"context"

	"meatdelivery/internal/core/domain/model/cart"
	"meatdelivery/internal/core/domain/model/kernel"
)

// CartRepository stores one cart per customer.
type CartRepository interface {
	// GetByUser returns the customer's cart or errs.ErrObjectNotFound.
	GetByUser(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)

	// Save inserts or replaces the customer's cart. It returns
	// cart.ErrCartChanged when the stored cart moved on since it was loaded.
	Save(ctx context.Context, aggregate *cart.Cart) error
}
