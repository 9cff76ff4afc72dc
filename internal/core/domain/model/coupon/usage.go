package coupon

import (
	"time"

	"meatdelivery/internal/core/domain/model/kernel"
)

// UserUsage records how often one customer redeemed a coupon.
type UserUsage struct {
	UserID     kernel.UUID
	UsageCount int
	LastUsed   time.Time
}
