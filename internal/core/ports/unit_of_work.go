package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Every repository it
// returns after Begin runs inside the same transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	CartRepository() CartRepository
	CouponRepository() CouponRepository
	CourierRepository() CourierRepository
	OrderRepository() OrderRepository
	OrderNumberSequence() OrderNumberSequence
	ProductRepository() ProductRepository
}
