package commands

import (
	"errors"
	"strings"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/guard"
)

var ErrMarkOutForDeliveryCommandIsNotConstructed = errors.New(
	"MarkOutForDeliveryCommand must be created via NewMarkOutForDeliveryCommand constructor",
)

// MarkOutForDeliveryCommand is the assigned courier leaving with the order.
type MarkOutForDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID
	notes     string

	guard guard.ConstructorGuard
}

func NewMarkOutForDeliveryCommand(orderID, courierID kernel.UUID, notes string) (MarkOutForDeliveryCommand, error) {
	if err := errors.Join(validateOrderID(orderID), courierID.Validate()); err != nil {
		return MarkOutForDeliveryCommand{}, err
	}
	return MarkOutForDeliveryCommand{
		orderID:   orderID,
		courierID: courierID,
		notes:     strings.TrimSpace(notes),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c MarkOutForDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrMarkOutForDeliveryCommandIsNotConstructed)
}

func (c MarkOutForDeliveryCommand) OrderID() kernel.UUID   { return c.orderID }
func (c MarkOutForDeliveryCommand) CourierID() kernel.UUID { return c.courierID }
func (c MarkOutForDeliveryCommand) Notes() string          { return c.notes }
