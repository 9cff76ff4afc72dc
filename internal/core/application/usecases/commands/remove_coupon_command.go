package commands

import (
	"errors"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/guard"
)

var ErrRemoveCouponCommandIsNotConstructed = errors.New(
	"RemoveCouponCommand must be created via NewRemoveCouponCommand constructor",
)

type RemoveCouponCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveCouponCommand(userID kernel.UUID) (RemoveCouponCommand, error) {
	if err := userID.Validate(); err != nil {
		return RemoveCouponCommand{}, err
	}
	return RemoveCouponCommand{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveCouponCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCouponCommandIsNotConstructed)
}

func (c RemoveCouponCommand) UserID() kernel.UUID { return c.userID }
