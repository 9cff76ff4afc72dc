package commands

import (
	"context"
	"time"

	"meatdelivery/internal/core/domain/model/cart"
)

type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{uowFactory: uowFactory}
}

// Handle empties the customer's cart. Clearing a cart that was never saved is not an error.
func (h ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) (*cart.Cart, error) {
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

	c, err := loadOrCreateCart(ctx, uow.CartRepository(), cmd.UserID(), now)
	if err != nil {
		return nil, err
	}

	c.Clear(now)

	if err = uow.CartRepository().Save(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
