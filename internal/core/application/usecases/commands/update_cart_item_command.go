package commands

import (
	"errors"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/guard"
)

var ErrUpdateCartItemCommandIsNotConstructed = errors.New(
	"UpdateCartItemCommand must be created via NewUpdateCartItemCommand constructor",
)

// UpdateCartItemCommand sets the quantity of one cart line.
type UpdateCartItemCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

func NewUpdateCartItemCommand(userID, itemID kernel.UUID, quantity int) (UpdateCartItemCommand, error) {
	if err := errors.Join(userID.Validate(), itemID.Validate(), validateQuantity(quantity)); err != nil {
		return UpdateCartItemCommand{}, err
	}
	return UpdateCartItemCommand{
		userID:   userID,
		itemID:   itemID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemCommandIsNotConstructed)
}

func (c UpdateCartItemCommand) UserID() kernel.UUID { return c.userID }
func (c UpdateCartItemCommand) ItemID() kernel.UUID { return c.itemID }
func (c UpdateCartItemCommand) Quantity() int       { return c.quantity }
