package commands

import (
	"errors"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/errs"
	"meatdelivery/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand is an admin handing a pending order to a courier.
//
// Example:
//
//	cmd, err := NewAssignCourierCommand(orderID, courierID, adminID)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment: %w", err)
//	}
//	assigned, err := handler.Handle(ctx, cmd)
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID
	adminID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignCourierCommand(orderID, courierID, adminID kernel.UUID) (AssignCourierCommand, error) {
	cmd := AssignCourierCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
		cmd.setAdminID(adminID),
	); err != nil {
		return AssignCourierCommand{}, err
	}

	return cmd, nil
}

func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

func (c AssignCourierCommand) OrderID() kernel.UUID   { return c.orderID }
func (c AssignCourierCommand) CourierID() kernel.UUID { return c.courierID }
func (c AssignCourierCommand) AdminID() kernel.UUID   { return c.adminID }

func (c *AssignCourierCommand) setOrderID(id kernel.UUID) error {
	if err := validateOrderID(id); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *AssignCourierCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryBoyId", err)
	}
	c.courierID = id
	return nil
}

func (c *AssignCourierCommand) setAdminID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.adminID = id
	return nil
}
