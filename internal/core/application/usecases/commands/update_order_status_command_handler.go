package commands

import (
	"context"
	"time"

	"meatdelivery/internal/core/domain/model/order"
)

type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	notifier   OrderNotifier
}

func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory, notifier OrderNotifier) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

// Handle applies the admin transition. Out-for-delivery is recorded on behalf
// of the assigned courier; cancellation restores stock and frees the courier.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	from := o.Status()

	switch cmd.Status() {
	case order.Preparing:
		err = o.StartPreparing(cmd.AdminID(), cmd.Notes(), now)
	case order.OutForDelivery:
		assigned := o.AssignedTo()
		if assigned == nil {
			return nil, order.ErrOrderNotAssigned
		}
		err = o.MarkOutForDelivery(*assigned, cmd.AdminID(), cmd.Notes(), now)
	case order.Cancelled:
		if err = cancelOrder(ctx, uow, o, cmd.AdminID(), cmd.Notes(), now); err != nil {
			return nil, err
		}
	}
	if err != nil {
		return nil, err
	}

	if cmd.Status() != order.Cancelled {
		if err = uow.OrderRepository().Update(ctx, o, from); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.OrderChanged(ctx, o)
	return o, nil
}
