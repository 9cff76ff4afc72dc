// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"meatdelivery/internal/core/domain/model/order"
	"meatdelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	CouponRepoFactory interface {
		CouponRepository() ports.CouponRepository
	}

	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	OrderNumberSequenceFactory interface {
		OrderNumberSequence() ports.OrderNumberSequence
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// CartUoW covers cart edits: the cart, the catalog it prices from and
	// the coupon it may carry.
	CartUoW interface {
		TxManager
		CartRepoFactory
		ProductRepoFactory
		CouponRepoFactory
	}

	CartUoWFactory interface {
		Create() CartUoW
	}

	// CouponUoW manages transactions for coupon administration.
	CouponUoW interface {
		TxManager
		CouponRepoFactory
	}

	CouponUoWFactory interface {
		Create() CouponUoW
	}

	// CourierUoW manages transactions for courier-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// ProductUoW manages transactions for catalog administration.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// DeliveryUoW manages transactions that move an order together with its courier.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// UoW spans every aggregate. Checkout and cancellation need it: they
	// touch the cart, coupons, stock, the order and possibly the courier in
	// one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   cart, err := uow.CartRepository().GetByUser(ctx, userID)
	//   err = uow.ProductRepository().ReserveStock(ctx, productID, 2)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		CartRepoFactory
		CouponRepoFactory
		CourierRepoFactory
		OrderRepoFactory
		OrderNumberSequenceFactory
		ProductRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

// OrderNotifier is told about every order that was placed or changed status,
// after the change committed. It must not fail the caller.
type OrderNotifier interface {
	OrderChanged(ctx context.Context, o *order.Order)
}
