package commands

import (
	"errors"
	"strings"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels a non-terminal order. Customers may only cancel
// their own orders; admins may cancel any.
//
// Example:
//
//	cmd, _ := NewCancelOrderCommand(orderID, customerID, false, "Ordered twice")
//	cancelled, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrOrderIsFinal) {
//	    // already delivered or cancelled
//	}
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	asAdmin bool
	reason  string

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID, actorID kernel.UUID, asAdmin bool, reason string) (CancelOrderCommand, error) {
	if err := errors.Join(validateOrderID(orderID), actorID.Validate()); err != nil {
		return CancelOrderCommand{}, err
	}
	return CancelOrderCommand{
		orderID: orderID,
		actorID: actorID,
		asAdmin: asAdmin,
		reason:  strings.TrimSpace(reason),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c CancelOrderCommand) ActorID() kernel.UUID { return c.actorID }
func (c CancelOrderCommand) AsAdmin() bool        { return c.asAdmin }
func (c CancelOrderCommand) Reason() string       { return c.reason }
