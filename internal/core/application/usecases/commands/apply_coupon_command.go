package commands

import (
	"errors"

	"meatdelivery/internal/core/domain/model/coupon"
	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/errs"
	"meatdelivery/internal/pkg/guard"
)

var ErrApplyCouponCommandIsNotConstructed = errors.New(
	"ApplyCouponCommand must be created via NewApplyCouponCommand constructor",
)

// ApplyCouponCommand attaches a coupon to the customer's cart. The code is
// normalised (trimmed, upper-cased) before lookup.
//
// Example:
//
//	cmd, _ := NewApplyCouponCommand(customerID, " welcome10 ")
//	cmd.Code() // "WELCOME10"
type ApplyCouponCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	code   string

	guard guard.ConstructorGuard
}

func NewApplyCouponCommand(userID kernel.UUID, code string) (ApplyCouponCommand, error) {
	code = coupon.NormalizeCode(code)
	var codeErr error
	if code == "" {
		codeErr = errs.NewValueIsRequiredError("couponCode")
	}
	if err := errors.Join(userID.Validate(), codeErr); err != nil {
		return ApplyCouponCommand{}, err
	}
	return ApplyCouponCommand{userID: userID, code: code, guard: guard.NewConstructorGuard()}, nil
}

func (c ApplyCouponCommand) Validate() error {
	return c.guard.Validate(ErrApplyCouponCommandIsNotConstructed)
}

func (c ApplyCouponCommand) UserID() kernel.UUID { return c.userID }
func (c ApplyCouponCommand) Code() string        { return c.code }
