package commands

import (
	"errors"

	"meatdelivery/internal/core/domain/model/coupon"
	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/guard"
)

var ErrCreateCouponCommandIsNotConstructed = errors.New(
	"CreateCouponCommand must be created via NewCreateCouponCommand constructor",
)

// CreateCouponCommand defines a new coupon. The terms are validated by the
// coupon aggregate itself when the handler builds it.
type CreateCouponCommand struct { //nolint:recvcheck //using for validation
	couponID kernel.UUID
	terms    coupon.Terms

	guard guard.ConstructorGuard
}

func NewCreateCouponCommand(terms coupon.Terms) (CreateCouponCommand, error) {
	if _, err := coupon.NewCoupon(kernel.NewUUID(), terms); err != nil {
		return CreateCouponCommand{}, err
	}
	return CreateCouponCommand{couponID: kernel.NewUUID(), terms: terms, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateCouponCommand) Validate() error {
	return c.guard.Validate(ErrCreateCouponCommandIsNotConstructed)
}

func (c CreateCouponCommand) CouponID() kernel.UUID { return c.couponID }
func (c CreateCouponCommand) Terms() coupon.Terms   { return c.terms }
