package commands

import (
	"errors"
	"strings"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand is the assigned courier handing the order over.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID
	notes     string

	guard guard.ConstructorGuard
}

func NewMarkDeliveredCommand(orderID, courierID kernel.UUID, notes string) (MarkDeliveredCommand, error) {
	if err := errors.Join(validateOrderID(orderID), courierID.Validate()); err != nil {
		return MarkDeliveredCommand{}, err
	}
	return MarkDeliveredCommand{
		orderID:   orderID,
		courierID: courierID,
		notes:     strings.TrimSpace(notes),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

func (c MarkDeliveredCommand) OrderID() kernel.UUID   { return c.orderID }
func (c MarkDeliveredCommand) CourierID() kernel.UUID { return c.courierID }
func (c MarkDeliveredCommand) Notes() string          { return c.notes }
