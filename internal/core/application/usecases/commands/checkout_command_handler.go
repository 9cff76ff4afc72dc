package commands

import (
	"context"
	"errors"
	"time"

	"meatdelivery/internal/core/domain/model/cart"
	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/order"
	"meatdelivery/internal/core/domain/model/product"
	"meatdelivery/internal/core/domain/services"
	"meatdelivery/internal/pkg/errs"
)

// CheckoutCommandHandler places orders from carts.
//
// Everything happens in one transaction: stock is reserved with conditional
// decrements, the cart's coupon is re-validated and its usage recorded, the
// order number is drawn, the order is stored and the cart emptied. Any
// failure rolls all of it back. The notifier runs after commit.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(uowFactory, dispatcher)
//	placed, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, cart.ErrCartIsEmpty):
//	    // nothing to order
//	case errors.Is(err, errs.ErrInsufficientStock):
//	    // a line exceeds what is left
//	case err != nil:
//	    return err
//	}
//	fmt.Println(placed.Number(), placed.Pricing().Total)
type CheckoutCommandHandler struct {
	uowFactory UoWFactory
	notifier   OrderNotifier
}

func NewCheckoutCommandHandler(uowFactory UoWFactory, notifier OrderNotifier) CheckoutCommandHandler {
	return CheckoutCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*order.Order, error) {
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
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, cart.ErrCartIsEmpty
	}
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, cart.ErrCartIsEmpty
	}

	products, err := cartProducts(ctx, uow.ProductRepository(), c)
	if err != nil {
		return nil, err
	}

	items, err := orderItems(c, products)
	if err != nil {
		return nil, err
	}

	discount, couponRef, err := h.redeemCoupon(ctx, uow, c, products, cmd.UserID(), now)
	if err != nil {
		return nil, err
	}

	for _, it := range items {
		if err = uow.ProductRepository().ReserveStock(ctx, it.ProductID, it.Quantity); err != nil {
			return nil, err
		}
	}

	seq, err := uow.OrderNumberSequence().Next(ctx)
	if err != nil {
		return nil, err
	}

	pricing, err := order.CalculatePricing(c.Totals().Subtotal, discount)
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(kernel.NewUUID(), order.Draft{
		Number:              order.NewOrderNumber(now, seq),
		CustomerID:          cmd.UserID(),
		Items:               items,
		Address:             cmd.Address(),
		Contact:             cmd.Contact(),
		Pricing:             pricing,
		PaymentMethod:       cmd.PaymentMethod(),
		Coupon:              couponRef,
		SpecialInstructions: cmd.SpecialInstructions(),
	}, now)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	c.Clear(now)
	if err = uow.CartRepository().Save(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.OrderChanged(ctx, placed)
	return placed, nil
}

// redeemCoupon re-prices the cart's coupon against the current coupon state
// and consumes one usage. A coupon that stopped applying fails the checkout
// instead of silently placing the order at full price.
func (h CheckoutCommandHandler) redeemCoupon(
	ctx context.Context,
	uow UoW,
	c *cart.Cart,
	products map[kernel.UUID]*product.Product,
	userID kernel.UUID,
	now time.Time,
) (kernel.Money, *order.CouponRef, error) {
	applied := c.AppliedCoupon()
	if applied == nil {
		return kernel.Zero, nil, nil
	}

	cp, err := uow.CouponRepository().Get(ctx, applied.CouponID)
	if err != nil {
		return kernel.Zero, nil, err
	}

	lines, err := services.CartLines(c, products)
	if err != nil {
		return kernel.Zero, nil, err
	}

	discount, err := services.CouponApplier{}.Price(cp, lines, userID, now)
	if err != nil {
		return kernel.Zero, nil, err
	}

	if err = uow.CouponRepository().RecordUsage(ctx, cp, userID, now); err != nil {
		return kernel.Zero, nil, err
	}

	return discount, &order.CouponRef{CouponID: cp.ID(), Code: cp.Code()}, nil
}

// orderItems freezes the cart lines into order items. Every product must
// still exist and be on sale.
func orderItems(c *cart.Cart, products map[kernel.UUID]*product.Product) ([]order.Item, error) {
	cartItems := c.Items()
	items := make([]order.Item, 0, len(cartItems))
	for _, it := range cartItems {
		p, ok := products[it.ProductID()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("product", it.ProductID())
		}
		if !p.IsActive() {
			return nil, errs.NewConflictError(p.Name() + " is no longer available")
		}
		item, err := order.NewItem(p.ID(), p.Name(), it.Quantity(), it.PriceAtTime())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
