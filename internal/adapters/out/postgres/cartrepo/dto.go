// Package cartrepo persists one cart per customer with its lines as a JSON
// document.
package cartrepo

import (
	"time"

	"meatdelivery/internal/core/domain/model/cart"
	"meatdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartDTO is a row of the carts table. Totals are stored for reporting and
// recomputed on load.
type CartDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	Items           []ItemDTO       `gorm:"serializer:json;type:jsonb;not null"`
	CouponID        *uuid.UUID      `gorm:"type:uuid"`
	CouponCode      string          `gorm:"type:varchar(20)"`
	CouponDiscount  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	CouponAppliedAt *time.Time
	TotalItems      int             `gorm:"not null;default:0"`
	Subtotal        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	FinalAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	UpdatedAt       time.Time       `gorm:"not null"`
	Version         int             `gorm:"not null;default:0"`
}

func (CartDTO) TableName() string {
	return "carts"
}

// ItemDTO is one cart line inside the items document.
type ItemDTO struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"productId"`
	Quantity    int             `json:"quantity"`
	PriceAtTime decimal.Decimal `json:"priceAtTime"`
	AddedAt     time.Time       `json:"addedAt"`
}

func fromDomain(c *cart.Cart) CartDTO {
	items := make([]ItemDTO, 0, len(c.Items()))
	for _, it := range c.Items() {
		items = append(items, ItemDTO{
			ID:          it.ID().Raw(),
			ProductID:   it.ProductID().Raw(),
			Quantity:    it.Quantity(),
			PriceAtTime: it.PriceAtTime().Decimal(),
			AddedAt:     it.AddedAt(),
		})
	}

	totals := c.Totals()
	dto := CartDTO{
		ID:             c.ID().Raw(),
		UserID:         c.UserID().Raw(),
		Items:          items,
		CouponDiscount: decimal.Zero,
		TotalItems:     totals.TotalItems,
		Subtotal:       totals.Subtotal.Decimal(),
		FinalAmount:    totals.FinalAmount.Decimal(),
		UpdatedAt:      c.UpdatedAt(),
		Version:        c.Version() + 1,
	}

	if applied := c.AppliedCoupon(); applied != nil {
		couponID := applied.CouponID.Raw()
		appliedAt := applied.AppliedAt
		dto.CouponID = &couponID
		dto.CouponCode = applied.Code
		dto.CouponDiscount = applied.Discount.Decimal()
		dto.CouponAppliedAt = &appliedAt
	}

	return dto
}

func toDomain(dto CartDTO) (*cart.Cart, error) {
	items := make([]cart.Item, 0, len(dto.Items))
	for _, it := range dto.Items {
		price, err := kernel.NewMoney(it.PriceAtTime)
		if err != nil {
			return nil, err
		}
		item, err := cart.RestoreItem(kernel.UUIDFrom(it.ID), kernel.UUIDFrom(it.ProductID), it.Quantity, price, it.AddedAt)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	var applied *cart.AppliedCoupon
	if dto.CouponID != nil {
		discount, err := kernel.NewMoney(dto.CouponDiscount)
		if err != nil {
			return nil, err
		}
		applied = &cart.AppliedCoupon{
			CouponID: kernel.UUIDFrom(*dto.CouponID),
			Code:     dto.CouponCode,
			Discount: discount,
		}
		if dto.CouponAppliedAt != nil {
			applied.AppliedAt = *dto.CouponAppliedAt
		}
	}

	return cart.RestoreCart(kernel.UUIDFrom(dto.ID), kernel.UUIDFrom(dto.UserID), items, applied, dto.UpdatedAt, dto.Version)
}
