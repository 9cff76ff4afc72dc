package commands

import (
	"context"
	"time"

	"meatdelivery/internal/core/domain/model/order"
)

type MarkOutForDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   OrderNotifier
}

func NewMarkOutForDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	notifier OrderNotifier,
) MarkOutForDeliveryCommandHandler {
	return MarkOutForDeliveryCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

// Handle moves a confirmed or preparing order to out-for-delivery. Only the
// assigned courier may do so.
func (h MarkOutForDeliveryCommandHandler) Handle(ctx context.Context, cmd MarkOutForDeliveryCommand) (*order.Order, error) {
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
	from := o.Status()

	if err = o.MarkOutForDelivery(cmd.CourierID(), cmd.CourierID(), cmd.Notes(), time.Now()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, o, from); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.OrderChanged(ctx, o)
	return o, nil
}
