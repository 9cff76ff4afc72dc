package commands

import (
	"context"
	"time"

	"meatdelivery/internal/core/domain/model/order"
	"meatdelivery/internal/core/domain/services"
)

// MarkDeliveredCommandHandler completes deliveries.
//
// The order gets an out-for-delivery entry first if the courier skipped that
// step. Payment is settled, the courier's counters grow, their average
// delivery time is recomputed over the last RecentDeliveriesWindow delivered
// orders and they become available again.
type MarkDeliveredCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   OrderNotifier
}

func NewMarkDeliveredCommandHandler(uowFactory DeliveryUoWFactory, notifier OrderNotifier) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	from := o.Status()

	c, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	previous, err := orderRepo.ListDeliveredByCourier(ctx, cmd.CourierID(), services.RecentDeliveriesWindow-1)
	if err != nil {
		return nil, err
	}

	if err = (services.DeliveryCoordinator{}).Deliver(o, c, previous, cmd.Notes(), time.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o, from); err != nil {
		return nil, err
	}

	if err = courierRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.OrderChanged(ctx, o)
	return o, nil
}
