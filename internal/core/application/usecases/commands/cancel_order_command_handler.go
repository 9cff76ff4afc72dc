package commands

import (
	"context"
	"time"

	"meatdelivery/internal/core/domain/model/order"
	"meatdelivery/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels orders and compensates: stock of every
// line is restored with an increment and an assigned courier is released.
// Coupon usage recorded at checkout is kept.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   OrderNotifier
}

func NewCancelOrderCommandHandler(uowFactory UoWFactory, notifier OrderNotifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !cmd.AsAdmin() && !o.IsOwnedBy(cmd.ActorID()) {
		return nil, errs.NewForbiddenError("cannot cancel another customer's order")
	}

	if err = cancelOrder(ctx, uow, o, cmd.ActorID(), cmd.Reason(), time.Now()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.OrderChanged(ctx, o)
	return o, nil
}
