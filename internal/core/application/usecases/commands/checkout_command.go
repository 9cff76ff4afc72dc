package commands

import (
	"errors"
	"strings"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/order"
	"meatdelivery/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand turns the customer's cart into a pending order.
//
// Example:
//
//	address, _ := order.NewDeliveryAddress("12 MG Road", "Bengaluru", "Karnataka", "560001", "", "", "")
//	contact, _ := order.NewContact("+919900000000", "")
//	cmd, err := NewCheckoutCommand(customerID, address, contact, order.CashOnDelivery, "Ring twice")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout: %w", err)
//	}
//	placed, err := handler.Handle(ctx, cmd)
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	userID              kernel.UUID
	address             order.DeliveryAddress
	contact             order.Contact
	paymentMethod       order.PaymentMethod
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand validates the delivery details. An empty payment method
// defaults to cash on delivery.
func NewCheckoutCommand(
	userID kernel.UUID,
	address order.DeliveryAddress,
	contact order.Contact,
	paymentMethod order.PaymentMethod,
	specialInstructions string,
) (CheckoutCommand, error) {
	if paymentMethod == "" {
		paymentMethod = order.CashOnDelivery
	}
	if err := errors.Join(
		userID.Validate(),
		address.Validate(),
		contact.Validate(),
		paymentMethod.Validate(),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return CheckoutCommand{
		userID:              userID,
		address:             address,
		contact:             contact,
		paymentMethod:       paymentMethod,
		specialInstructions: strings.TrimSpace(specialInstructions),
		guard:               guard.NewConstructorGuard(),
	}, nil
}

func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

func (c CheckoutCommand) UserID() kernel.UUID                { return c.userID }
func (c CheckoutCommand) Address() order.DeliveryAddress     { return c.address }
func (c CheckoutCommand) Contact() order.Contact             { return c.contact }
func (c CheckoutCommand) PaymentMethod() order.PaymentMethod { return c.paymentMethod }
func (c CheckoutCommand) SpecialInstructions() string        { return c.specialInstructions }
