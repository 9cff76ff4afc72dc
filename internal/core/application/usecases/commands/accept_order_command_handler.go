package commands

import (
	"context"
	"time"

	"meatdelivery/internal/core/domain/model/order"
)

// AcceptOrderCommandHandler lets a courier accept a pending order.
//
// The courier must be approved and active with no other order in
// confirmed, preparing or out-for-delivery. On success the order is
// confirmed with an ETA 45 minutes out and the courier becomes busy.
//
// Example:
//
//	cmd, _ := NewAcceptOrderCommand(orderID, courierID)
//	accepted, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrOrderAlreadyAssigned) {
//	    // another courier was faster
//	}
type AcceptOrderCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   OrderNotifier
}

func NewAcceptOrderCommandHandler(uowFactory DeliveryUoWFactory, notifier OrderNotifier) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (*order.Order, error) {
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

	o, err := acceptOrder(ctx, uow, cmd.OrderID(), cmd.CourierID(), cmd.CourierID(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.OrderChanged(ctx, o)
	return o, nil
}
