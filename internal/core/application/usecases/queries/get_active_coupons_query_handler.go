package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type GetActiveCouponsQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGetActiveCouponsQueryHandler(db *gorm.DB) GetActiveCouponsQueryHandler {
	return GetActiveCouponsQueryHandler{db: db, now: time.Now}
}

// Handle orders coupons by expiry so the ones ending soonest come first.
func (h GetActiveCouponsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveCouponsQuery,
) (Paginated[CouponView], error) {
	if err := query.Validate(); err != nil {
		return Paginated[CouponView]{}, err
	}

	const where = ` WHERE is_active = ? AND valid_from <= ? AND valid_to >= ?
		AND (usage_limit IS NULL OR usage_count < usage_limit)`
	now := h.now()
	db := h.db.WithContext(ctx)

	var total int64
	if err := db.Raw(`SELECT COUNT(*) FROM coupons`+where, true, now, now).Scan(&total).Error; err != nil {
		return Paginated[CouponView]{}, err
	}

	var rows []couponRow
	err := db.Raw(`SELECT `+couponColumns+` FROM coupons`+where+` ORDER BY valid_to, code LIMIT ? OFFSET ?`,
		true, now, now, query.page.Size, query.page.Offset()).Scan(&rows).Error
	if err != nil {
		return Paginated[CouponView]{}, err
	}

	coupons := make([]CouponView, 0, len(rows))
	for _, r := range rows {
		c, restoreErr := r.coupon()
		if restoreErr != nil {
			return Paginated[CouponView]{}, restoreErr
		}
		coupons = append(coupons, NewCouponView(c))
	}
	return paginated(coupons, total, query.page), nil
}
