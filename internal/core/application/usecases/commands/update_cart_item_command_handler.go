package commands

import (
	"context"
	"time"

	"meatdelivery/internal/core/domain/model/cart"
	"meatdelivery/internal/pkg/errs"
)

type UpdateCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewUpdateCartItemCommandHandler(uowFactory CartUoWFactory) UpdateCartItemCommandHandler {
	return UpdateCartItemCommandHandler{uowFactory: uowFactory}
}

// Handle changes the line quantity, refreshing its price snapshot from the
// current product price.
func (h UpdateCartItemCommandHandler) Handle(ctx context.Context, cmd UpdateCartItemCommand) (*cart.Cart, error) {
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

	item, ok := c.Item(cmd.ItemID())
	if !ok {
		return nil, errs.NewObjectNotFoundError("cart item", cmd.ItemID())
	}

	p, err := uow.ProductRepository().Get(ctx, item.ProductID())
	if err != nil {
		return nil, err
	}

	if err = c.UpdateItem(cmd.ItemID(), p, cmd.Quantity(), now); err != nil {
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
