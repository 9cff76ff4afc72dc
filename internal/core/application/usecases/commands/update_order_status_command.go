package commands

import (
	"errors"
	"strings"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/order"
	"meatdelivery/internal/pkg/errs"
	"meatdelivery/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand is an admin moving an order along its lifecycle.
// Supported targets are preparing, out-for-delivery and cancelled; orders are
// confirmed by assignment and delivered by their courier.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	adminID kernel.UUID
	status  order.Status
	notes   string

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(orderID, adminID kernel.UUID, status order.Status, notes string) (UpdateOrderStatusCommand, error) {
	var statusErr error
	switch status {
	case order.Preparing, order.OutForDelivery, order.Cancelled:
	case order.Confirmed:
		statusErr = errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("orders are confirmed by assigning a courier"))
	case order.Delivered:
		statusErr = errs.NewForbiddenError("only the assigned courier can mark an order delivered")
	default:
		statusErr = errs.NewValueIsInvalidError("status")
	}

	if err := errors.Join(validateOrderID(orderID), adminID.Validate(), statusErr); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID: orderID,
		adminID: adminID,
		status:  status,
		notes:   strings.TrimSpace(notes),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateOrderStatusCommand) AdminID() kernel.UUID { return c.adminID }
func (c UpdateOrderStatusCommand) Status() order.Status { return c.status }
func (c UpdateOrderStatusCommand) Notes() string        { return c.notes }
