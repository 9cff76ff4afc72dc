package commands

import (
	"context"
	"errors"
	"time"

	"meatdelivery/internal/core/domain/model/cart"
	"meatdelivery/internal/core/domain/model/coupon"
	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/product"
	"meatdelivery/internal/core/domain/services"
	"meatdelivery/internal/core/ports"
	"meatdelivery/internal/pkg/errs"
)

func validateQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	return nil
}

// loadOrCreateCart returns the customer's cart, or a fresh one when none was saved yet.
func loadOrCreateCart(ctx context.Context, repo ports.CartRepository, userID kernel.UUID, now time.Time) (*cart.Cart, error) {
	c, err := repo.GetByUser(ctx, userID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return cart.NewCart(kernel.NewUUID(), userID, now)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func cartProducts(ctx context.Context, repo ports.ProductRepository, c *cart.Cart) (map[kernel.UUID]*product.Product, error) {
	items := c.Items()
	ids := make([]kernel.UUID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID())
	}
	return repo.GetMany(ctx, ids)
}

// refreshCartCoupon re-prices the coupon carried by the cart after its items
// changed, dropping it when it no longer applies.
func refreshCartCoupon(ctx context.Context, uow CartUoW, c *cart.Cart, now time.Time) error {
	applied := c.AppliedCoupon()
	if applied == nil {
		return nil
	}

	products, err := cartProducts(ctx, uow.ProductRepository(), c)
	if err != nil {
		return err
	}

	var cp *coupon.Coupon
	cp, err = uow.CouponRepository().Get(ctx, applied.CouponID)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	_, err = services.CouponApplier{}.Refresh(c, cp, products, c.UserID(), now)
	return err
}
