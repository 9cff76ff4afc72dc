package commands

import (
	"errors"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/guard"
)

var ErrDeactivateCouponCommandIsNotConstructed = errors.New(
	"DeactivateCouponCommand must be created via NewDeactivateCouponCommand constructor",
)

// DeactivateCouponCommand soft-deletes a coupon: it stays stored for the
// orders that redeemed it but can no longer be applied.
type DeactivateCouponCommand struct { //nolint:recvcheck //using for validation
	couponID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeactivateCouponCommand(couponID kernel.UUID) (DeactivateCouponCommand, error) {
	if err := couponID.Validate(); err != nil {
		return DeactivateCouponCommand{}, err
	}
	return DeactivateCouponCommand{couponID: couponID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeactivateCouponCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateCouponCommandIsNotConstructed)
}

func (c DeactivateCouponCommand) CouponID() kernel.UUID { return c.couponID }
