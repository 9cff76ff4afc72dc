// Package couponrepo persists coupons and their per-customer usage rows.
package couponrepo

import (
	"time"

	"meatdelivery/internal/core/domain/model/coupon"
	"meatdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// TextArray is a text[] column on Postgres. Other dialects keep the same
// array literal in a text column.
type TextArray struct {
	pq.StringArray
}

func (TextArray) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

// CouponDTO is a row of the coupons table.
type CouponDTO struct {
	ID                   uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Code                 string           `gorm:"type:varchar(20);uniqueIndex;not null"`
	Description          string           `gorm:"type:text"`
	DiscountType         string           `gorm:"type:varchar(16);not null"`
	DiscountValue        decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	MinimumOrderValue    decimal.Decimal  `gorm:"type:numeric(12,2);not null;default:0"`
	MaximumDiscount      *decimal.Decimal `gorm:"type:numeric(12,2)"`
	UsageLimit           *int
	UsageCount           int       `gorm:"not null;default:0"`
	UserUsageLimit       int       `gorm:"not null;default:1"`
	ValidFrom            time.Time `gorm:"not null"`
	ValidTo              time.Time `gorm:"not null;index"`
	IsActive             bool      `gorm:"not null;index"`
	ApplicableCategories TextArray
	ExcludedProducts     TextArray
	UserEligibility      string           `gorm:"type:varchar(16);not null;default:all"`
	Usages               []CouponUsageDTO `gorm:"foreignKey:CouponID;constraint:OnDelete:CASCADE"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (CouponDTO) TableName() string {
	return "coupons"
}

// CouponUsageDTO counts the redemptions of one customer.
type CouponUsageDTO struct {
	CouponID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	UsageCount int       `gorm:"not null;default:0"`
	LastUsed   time.Time `gorm:"not null"`
}

func (CouponUsageDTO) TableName() string {
	return "coupon_usages"
}

func fromDomain(c *coupon.Coupon) CouponDTO {
	t := c.Terms()

	var maxDiscount *decimal.Decimal
	if t.MaximumDiscount != nil {
		d := t.MaximumDiscount.Decimal()
		maxDiscount = &d
	}

	categories := make([]string, 0, len(t.ApplicableCategories))
	for _, cat := range t.ApplicableCategories {
		categories = append(categories, cat.String())
	}
	excluded := make([]string, 0, len(t.ExcludedProducts))
	for _, id := range t.ExcludedProducts {
		excluded = append(excluded, id.String())
	}

	return CouponDTO{
		ID:                   c.ID().Raw(),
		Code:                 t.Code,
		Description:          t.Description,
		DiscountType:         t.Type.String(),
		DiscountValue:        t.Value,
		MinimumOrderValue:    t.MinimumOrderValue.Decimal(),
		MaximumDiscount:      maxDiscount,
		UsageLimit:           t.UsageLimit,
		UsageCount:           c.UsageCount(),
		UserUsageLimit:       t.UserUsageLimit,
		ValidFrom:            t.ValidFrom,
		ValidTo:              t.ValidTo,
		IsActive:             c.IsActive(),
		ApplicableCategories: TextArray{StringArray: categories},
		ExcludedProducts:     TextArray{StringArray: excluded},
		UserEligibility:      string(t.UserEligibility),
	}
}

func toDomain(dto CouponDTO) (*coupon.Coupon, error) {
	minimum, err := kernel.NewMoney(dto.MinimumOrderValue)
	if err != nil {
		return nil, err
	}

	var maxDiscount *kernel.Money
	if dto.MaximumDiscount != nil {
		m, moneyErr := kernel.NewMoney(*dto.MaximumDiscount)
		if moneyErr != nil {
			return nil, moneyErr
		}
		maxDiscount = &m
	}

	categories := make([]kernel.Category, 0, len(dto.ApplicableCategories.StringArray))
	for _, s := range dto.ApplicableCategories.StringArray {
		categories = append(categories, kernel.Category(s))
	}

	excluded := make([]kernel.UUID, 0, len(dto.ExcludedProducts.StringArray))
	for _, s := range dto.ExcludedProducts.StringArray {
		id, idErr := kernel.UUIDFromString(s)
		if idErr != nil {
			return nil, idErr
		}
		excluded = append(excluded, id)
	}

	usedBy := make([]coupon.UserUsage, 0, len(dto.Usages))
	for _, u := range dto.Usages {
		usedBy = append(usedBy, coupon.UserUsage{
			UserID:     kernel.UUIDFrom(u.UserID),
			UsageCount: u.UsageCount,
			LastUsed:   u.LastUsed,
		})
	}

	return coupon.RestoreCoupon(kernel.UUIDFrom(dto.ID), coupon.Terms{
		Code:                 dto.Code,
		Description:          dto.Description,
		Type:                 coupon.DiscountType(dto.DiscountType),
		Value:                dto.DiscountValue,
		MinimumOrderValue:    minimum,
		MaximumDiscount:      maxDiscount,
		UsageLimit:           dto.UsageLimit,
		UserUsageLimit:       dto.UserUsageLimit,
		ValidFrom:            dto.ValidFrom,
		ValidTo:              dto.ValidTo,
		ApplicableCategories: categories,
		ExcludedProducts:     excluded,
		UserEligibility:      coupon.Eligibility(dto.UserEligibility),
	}, dto.IsActive, dto.UsageCount, usedBy)
}
