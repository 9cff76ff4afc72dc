package commands

import (
	"context"
	"time"

	"meatdelivery/internal/core/domain/model/cart"
	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/services"
)

// ApplyCouponResponse carries the updated cart and the discount just granted.
type ApplyCouponResponse struct {
	Cart     *cart.Cart
	Discount kernel.Money
}

// ApplyCouponCommandHandler runs the apply-to-cart protocol. No coupon usage
// is consumed here; usage is recorded when the order is placed.
type ApplyCouponCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewApplyCouponCommandHandler(uowFactory CartUoWFactory) ApplyCouponCommandHandler {
	return ApplyCouponCommandHandler{uowFactory: uowFactory}
}

// Handle looks the coupon up by code, validates it against the cart and the
// customer, and stores the coupon snapshot on the cart.
func (h ApplyCouponCommandHandler) Handle(ctx context.Context, cmd ApplyCouponCommand) (ApplyCouponResponse, error) {
	if err := cmd.Validate(); err != nil {
		return ApplyCouponResponse{}, err
	}
	now := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ApplyCouponResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cp, err := uow.CouponRepository().GetByCode(ctx, cmd.Code())
	if err != nil {
		return ApplyCouponResponse{}, err
	}

	c, err := uow.CartRepository().GetByUser(ctx, cmd.UserID())
	if err != nil {
		return ApplyCouponResponse{}, err
	}

	products, err := cartProducts(ctx, uow.ProductRepository(), c)
	if err != nil {
		return ApplyCouponResponse{}, err
	}

	discount, err := services.CouponApplier{}.Apply(c, cp, products, cmd.UserID(), now)
	if err != nil {
		return ApplyCouponResponse{}, err
	}

	if err = uow.CartRepository().Save(ctx, c); err != nil {
		return ApplyCouponResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ApplyCouponResponse{}, err
	}

	return ApplyCouponResponse{Cart: c, Discount: discount}, nil
}
