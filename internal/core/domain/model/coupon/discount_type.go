package coupon

import (
	"fmt"

	"meatdelivery/internal/pkg/errs"
)

// DiscountType selects how Value is interpreted.
type DiscountType string

const (
	// Percentage discounts Value percent of the applicable amount.
	Percentage DiscountType = "percentage"
	// Fixed discounts Value rupees, never more than the applicable amount.
	Fixed DiscountType = "fixed"
)

func (t DiscountType) Validate() error {
	switch t {
	case Percentage, Fixed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a discount type", string(t)))
	}
}

func (t DiscountType) String() string {
	return string(t)
}

// Eligibility is the customer segment a coupon targets. It is stored and
// reported; segment membership is owned by the identity service.
type Eligibility string

const (
	EligibilityAll     Eligibility = "all"
	EligibilityNew     Eligibility = "new"
	EligibilityPremium Eligibility = "premium"
)

func (e Eligibility) Validate() error {
	switch e {
	case EligibilityAll, EligibilityNew, EligibilityPremium:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("userEligibility", fmt.Errorf("%q is not a segment", string(e)))
	}
}
