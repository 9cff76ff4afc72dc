package ports

import (
	"context"
	"time"

	"meatdelivery/internal/core/domain/model/coupon"
	"meatdelivery/internal/core/domain/model/kernel"
)

// CouponRepository defines the persistence contract for coupons and their
// per-customer usage.
type CouponRepository interface {
	// Add persists a new coupon. A taken code is a conflict.
	Add(ctx context.Context, aggregate *coupon.Coupon) error

	// Update persists the activity flag. Usage is only changed through RecordUsage.
	Update(ctx context.Context, aggregate *coupon.Coupon) error

	// Get retrieves a coupon with its usage by id.
	Get(ctx context.Context, id kernel.UUID) (*coupon.Coupon, error)

	// GetByCode retrieves a coupon by its normalised code.
	GetByCode(ctx context.Context, code string) (*coupon.Coupon, error)

	// ListActive returns active coupons whose window contains now.
	ListActive(ctx context.Context, now time.Time) ([]*coupon.Coupon, error)

	// RecordUsage consumes one use of the coupon by the customer.
	//
	// Both caps are enforced by the storage in conditional writes, so two
	// concurrent redemptions can never exceed usageLimit or userUsageLimit.
	// A refused redemption returns coupon.ErrCouponUsageLimitReached or
	// coupon.ErrCouponUserLimitReached.
	RecordUsage(ctx context.Context, aggregate *coupon.Coupon, userID kernel.UUID, now time.Time) error
}
