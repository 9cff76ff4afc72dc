package commands

import (
	"errors"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand puts a product into the customer's cart, merging with an
// existing line of the same product.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand(customerID, productID, 2)
//	if err != nil {
//	    return fmt.Errorf("invalid cart item: %w", err)
//	}
//	updated, err := handler.Handle(ctx, cmd)
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

func NewAddCartItemCommand(userID, productID kernel.UUID, quantity int) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		userID.Validate(),
		productID.Validate(),
		validateQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	cmd.userID = userID
	cmd.productID = productID
	cmd.quantity = quantity
	return cmd, nil
}

func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

func (c AddCartItemCommand) UserID() kernel.UUID    { return c.userID }
func (c AddCartItemCommand) ProductID() kernel.UUID { return c.productID }
func (c AddCartItemCommand) Quantity() int          { return c.quantity }
