package coupon

import (
	"time"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/errs"
)

var (
	ErrCouponIsInactive        = errs.NewConflictError("coupon is not active")
	ErrCouponIsNotYetValid     = errs.NewConflictError("coupon is not yet active")
	ErrCouponHasExpired        = errs.NewConflictError("coupon has expired")
	ErrCouponUsageLimitReached = errs.NewConflictError("coupon usage limit reached")
	ErrCouponUserLimitReached  = errs.NewConflictError("you have already used this coupon the maximum number of times")
	ErrCouponNotApplicable     = errs.NewConflictError("coupon does not apply to any item in the cart")
)

// IsCurrentlyValid reports whether the coupon is active, inside its inclusive
// validity window at now, and not globally exhausted.
func (c *Coupon) IsCurrentlyValid(now time.Time) bool {
	return c.currentValidityError(now) == nil
}

func (c *Coupon) currentValidityError(now time.Time) error {
	switch {
	case !c.isActive:
		return ErrCouponIsInactive
	case now.Before(c.terms.ValidFrom):
		return ErrCouponIsNotYetValid
	case now.After(c.terms.ValidTo):
		return ErrCouponHasExpired
	case c.exhausted():
		return ErrCouponUsageLimitReached
	default:
		return nil
	}
}

func (c *Coupon) exhausted() bool {
	return c.terms.UsageLimit != nil && c.usageCount >= *c.terms.UsageLimit
}

// UsageBy returns how many times the customer redeemed the coupon.
func (c *Coupon) UsageBy(userID kernel.UUID) int {
	for _, u := range c.usedBy {
		if u.UserID.IsEqual(userID) {
			return u.UsageCount
		}
	}
	return 0
}

// CanUserUseCoupon reports whether the customer is under the per-user cap.
// A customer who never redeemed the coupon is always under it.
func (c *Coupon) CanUserUseCoupon(userID kernel.UUID) bool {
	return c.UsageBy(userID) < c.terms.UserUsageLimit
}

// CheckUsable explains why a customer may not use the coupon at now.
// It returns nil when IsCurrentlyValid and CanUserUseCoupon both hold.
func (c *Coupon) CheckUsable(userID kernel.UUID, now time.Time) error {
	if err := c.currentValidityError(now); err != nil {
		return err
	}
	if !c.CanUserUseCoupon(userID) {
		return ErrCouponUserLimitReached
	}
	return nil
}

// CheckMinimum rejects an applicable amount below the minimum order value.
func (c *Coupon) CheckMinimum(applicableAmount kernel.Money) error {
	if applicableAmount.IsZero() {
		return ErrCouponNotApplicable
	}
	if applicableAmount.LessThan(c.terms.MinimumOrderValue) {
		return errs.NewConflictError("minimum order value of " + c.terms.MinimumOrderValue.Format() + " required")
	}
	return nil
}

// ApplyUsage redeems the coupon for a customer: the global usage count and the
// customer's usage record are incremented together. It fails without changes
// when either cap is already reached. Persistence repeats both checks as
// conditional writes so concurrent redemptions cannot overshoot.
func (c *Coupon) ApplyUsage(userID kernel.UUID, now time.Time) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	if c.exhausted() {
		return ErrCouponUsageLimitReached
	}
	if !c.CanUserUseCoupon(userID) {
		return ErrCouponUserLimitReached
	}

	c.usageCount++
	for i := range c.usedBy {
		if c.usedBy[i].UserID.IsEqual(userID) {
			c.usedBy[i].UsageCount++
			c.usedBy[i].LastUsed = now
			return nil
		}
	}
	c.usedBy = append(c.usedBy, UserUsage{UserID: userID, UsageCount: 1, LastUsed: now})
	return nil
}
