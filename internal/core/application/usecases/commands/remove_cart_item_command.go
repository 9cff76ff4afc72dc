package commands

import (
	"errors"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveCartItemCommand(userID, itemID kernel.UUID) (RemoveCartItemCommand, error) {
	if err := errors.Join(userID.Validate(), itemID.Validate()); err != nil {
		return RemoveCartItemCommand{}, err
	}
	return RemoveCartItemCommand{userID: userID, itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

func (c RemoveCartItemCommand) UserID() kernel.UUID { return c.userID }
func (c RemoveCartItemCommand) ItemID() kernel.UUID { return c.itemID }
