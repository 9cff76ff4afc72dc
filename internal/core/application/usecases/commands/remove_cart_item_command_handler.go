package commands

import (
	"context"
	"time"

	"meatdelivery/internal/core/domain/model/cart"
)

type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{uowFactory: uowFactory}
}

// Handle drops the line. Removing the last line also drops the coupon.
func (h RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	now := time.Now()

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

	if err = c.RemoveItem(cmd.ItemID(), now); err != nil {
		return nil, err
	}

	if err = refreshCartCoupon(ctx, uow, c, now); err != nil {
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
