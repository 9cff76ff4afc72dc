package queries

import (
	"time"

	"meatdelivery/internal/core/domain/model/coupon"
	"meatdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const couponColumns = `
	id, code, description, discount_type, discount_value, minimum_order_value,
	maximum_discount, usage_limit, usage_count, user_usage_limit, valid_from, valid_to,
	is_active, applicable_categories, excluded_products, user_eligibility`

// CouponView is what customers see of a coupon. Redemption records stay private.
type CouponView struct {
	ID                   kernel.UUID     `json:"id"`
	Code                 string          `json:"code"`
	Description          string          `json:"description,omitempty"`
	Type                 string          `json:"type"`
	Value                decimal.Decimal `json:"value"`
	MinimumOrderValue    kernel.Money    `json:"minimumOrderValue"`
	MaximumDiscount      *kernel.Money   `json:"maximumDiscount,omitempty"`
	UsageLimit           *int            `json:"usageLimit,omitempty"`
	UsageCount           int             `json:"usageCount"`
	UserUsageLimit       int             `json:"userUsageLimit"`
	ValidFrom            time.Time       `json:"validFrom"`
	ValidTo              time.Time       `json:"validTo"`
	ApplicableCategories []string        `json:"applicableCategories"`
	UserEligibility      string          `json:"userEligibility"`
	FormattedDiscount    string          `json:"formattedDiscount"`
}

// NewCouponView presents a coupon aggregate.
func NewCouponView(c *coupon.Coupon) CouponView {
	t := c.Terms()
	categories := make([]string, 0, len(t.ApplicableCategories))
	for _, cat := range t.ApplicableCategories {
		categories = append(categories, string(cat))
	}
	return CouponView{
		ID:                   c.ID(),
		Code:                 c.Code(),
		Description:          t.Description,
		Type:                 t.Type.String(),
		Value:                t.Value,
		MinimumOrderValue:    t.MinimumOrderValue,
		MaximumDiscount:      t.MaximumDiscount,
		UsageLimit:           t.UsageLimit,
		UsageCount:           c.UsageCount(),
		UserUsageLimit:       t.UserUsageLimit,
		ValidFrom:            t.ValidFrom,
		ValidTo:              t.ValidTo,
		ApplicableCategories: categories,
		UserEligibility:      string(t.UserEligibility),
		FormattedDiscount:    c.DisplayText(),
	}
}

type couponRow struct {
	ID                   uuid.UUID
	Code                 string
	Description          string
	DiscountType         string
	DiscountValue        decimal.Decimal
	MinimumOrderValue    decimal.Decimal
	MaximumDiscount      *decimal.Decimal
	UsageLimit           *int
	UsageCount           int
	UserUsageLimit       int
	ValidFrom            time.Time
	ValidTo              time.Time
	IsActive             bool
	ApplicableCategories pq.StringArray
	ExcludedProducts     pq.StringArray
	UserEligibility      string
}

func (r couponRow) coupon() (*coupon.Coupon, error) {
	var maxDiscount *kernel.Money
	if r.MaximumDiscount != nil {
		m := amount(*r.MaximumDiscount)
		maxDiscount = &m
	}

	categories := make([]kernel.Category, 0, len(r.ApplicableCategories))
	for _, s := range r.ApplicableCategories {
		categories = append(categories, kernel.Category(s))
	}
	excluded := make([]kernel.UUID, 0, len(r.ExcludedProducts))
	for _, s := range r.ExcludedProducts {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		excluded = append(excluded, id)
	}

	return coupon.RestoreCoupon(kernel.UUIDFrom(r.ID), coupon.Terms{
		Code:                 r.Code,
		Description:          r.Description,
		Type:                 coupon.DiscountType(r.DiscountType),
		Value:                r.DiscountValue,
		MinimumOrderValue:    amount(r.MinimumOrderValue),
		MaximumDiscount:      maxDiscount,
		UsageLimit:           r.UsageLimit,
		UserUsageLimit:       r.UserUsageLimit,
		ValidFrom:            r.ValidFrom,
		ValidTo:              r.ValidTo,
		ApplicableCategories: categories,
		ExcludedProducts:     excluded,
		UserEligibility:      coupon.Eligibility(r.UserEligibility),
	}, r.IsActive, r.UsageCount, nil)
}
