package ports

import (
	"context"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/product"
)

// ProductRepository is the catalog as seen by carts and checkout.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by id. Returns errs.ErrObjectNotFound when missing.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetMany retrieves the listed products keyed by id. Unknown ids are
	// simply absent from the result.
	GetMany(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*product.Product, error)

	// ReserveStock decrements stock in a single conditional write that only
	// succeeds for an active product holding at least quantity units.
	// Otherwise it returns an *errs.InsufficientStockError.
	ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error

	// ReleaseStock returns quantity units to stock.
	ReleaseStock(ctx context.Context, id kernel.UUID, quantity int) error
}
