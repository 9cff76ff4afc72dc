package commands

import (
	"context"
	"time"

	"meatdelivery/internal/core/domain/model/cart"
)

// AddCartItemCommandHandler adds products to carts. Stock is checked against
// the resulting line quantity but not reserved; reservation happens at checkout.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{uowFactory: uowFactory}
}

// Handle loads the product, adds it to the cart (created on first use),
// re-prices an applied coupon and saves the cart.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) (*cart.Cart, error) {
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

	p, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	c, err := loadOrCreateCart(ctx, uow.CartRepository(), cmd.UserID(), now)
	if err != nil {
		return nil, err
	}

	if err = c.AddItem(p, cmd.Quantity(), now); err != nil {
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
