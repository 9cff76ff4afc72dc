package queries

import (
	"errors"

	"meatdelivery/internal/core/domain/model/coupon"
	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/errs"
	"meatdelivery/internal/pkg/guard"
)

var ErrValidateCouponQueryIsNotConstructed = errors.New(
	"ValidateCouponQuery must be created via NewValidateCouponQuery constructor",
)

// ValidateCouponQuery previews a coupon for a customer without redeeming it.
// With an order amount it also checks the minimum and prices the discount.
//
// Example:
//
//	amount := kernel.Rupees(600)
//	query, err := NewValidateCouponQuery("welcome10", userID, &amount)
//	preview, err := handler.Handle(ctx, query)
//	// preview.Discount == ₹60
type ValidateCouponQuery struct {
	code        string
	userID      kernel.UUID
	orderAmount *kernel.Money

	guard guard.ConstructorGuard
}

func NewValidateCouponQuery(code string, userID kernel.UUID, orderAmount *kernel.Money) (ValidateCouponQuery, error) {
	code = coupon.NormalizeCode(code)
	if code == "" {
		return ValidateCouponQuery{}, errs.NewValueIsRequiredError("code")
	}
	if err := userID.Validate(); err != nil {
		return ValidateCouponQuery{}, err
	}
	if orderAmount != nil && orderAmount.IsZero() {
		orderAmount = nil
	}
	return ValidateCouponQuery{
		code:        code,
		userID:      userID,
		orderAmount: orderAmount,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q ValidateCouponQuery) Validate() error {
	return q.guard.Validate(ErrValidateCouponQueryIsNotConstructed)
}
