package commands

import (
	"context"
	"time"

	"meatdelivery/internal/core/domain/model/cart"
)

type RemoveCouponCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewRemoveCouponCommandHandler(uowFactory CartUoWFactory) RemoveCouponCommandHandler {
	return RemoveCouponCommandHandler{uowFactory: uowFactory}
}

// Handle clears the coupon snapshot. A cart without a coupon is a conflict.
func (h RemoveCouponCommandHandler) Handle(ctx context.Context, cmd RemoveCouponCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.CartRepository().GetByUser(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	if err = c.RemoveCoupon(time.Now()); err != nil {
		return nil, err
	}

	if err = uow.CartRepository().Save(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
