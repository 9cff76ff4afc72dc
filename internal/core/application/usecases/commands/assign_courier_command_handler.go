package commands

import (
	"context"
	"time"

	"meatdelivery/internal/core/domain/model/order"
)

// AssignCourierCommandHandler orchestrates admin assignment of a pending
// order. It applies the same rules as a courier accepting the order; only
// the actor recorded in the history differs.
//
// Example:
//
//	handler := NewAssignCourierCommandHandler(uowFactory, dispatcher)
//	cmd, _ := NewAssignCourierCommand(orderID, courierID, adminID)
//	_, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrOrderAlreadyAssigned):
//	    log.Println("Order already has a courier")
//	case errors.Is(err, services.ErrCourierHasActiveDelivery):
//	    log.Println("Courier is busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignCourierCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   OrderNotifier
}

func NewAssignCourierCommandHandler(uowFactory DeliveryUoWFactory, notifier OrderNotifier) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle confirms the order for the courier, marks the courier busy and
// persists both within a single transaction.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, command AssignCourierCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := acceptOrder(ctx, uow, command.OrderID(), command.CourierID(), command.AdminID(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.OrderChanged(ctx, o)
	return o, nil
}
