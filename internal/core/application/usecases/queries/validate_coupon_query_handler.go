package queries

import (
	"context"
	"errors"
	"time"

	"meatdelivery/internal/core/domain/model/coupon"
	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/errs"
)

// CouponReader loads coupons together with their redemption records.
type CouponReader interface {
	GetByCode(ctx context.Context, code string) (*coupon.Coupon, error)
}

var ErrInvalidCouponCode = errs.NewValueIsInvalidErrorWithCause("code", errors.New("invalid coupon code"))

type CouponPreview struct {
	Coupon           CouponView   `json:"coupon"`
	Discount         kernel.Money `json:"discount"`
	ApplicableAmount kernel.Money `json:"applicableAmount"`
}

type ValidateCouponQueryHandler struct {
	coupons CouponReader
	now     func() time.Time
}

func NewValidateCouponQueryHandler(coupons CouponReader) ValidateCouponQueryHandler {
	return ValidateCouponQueryHandler{coupons: coupons, now: time.Now}
}

// Handle reports the first reason the customer could not use the coupon:
// unknown or inactive code, not yet active, expired, exhausted, already used
// by this customer, or below the minimum order value.
func (h ValidateCouponQueryHandler) Handle(ctx context.Context, query ValidateCouponQuery) (CouponPreview, error) {
	if err := query.Validate(); err != nil {
		return CouponPreview{}, err
	}

	c, err := h.coupons.GetByCode(ctx, query.code)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return CouponPreview{}, ErrInvalidCouponCode
	}
	if err != nil {
		return CouponPreview{}, err
	}
	if !c.IsActive() {
		return CouponPreview{}, ErrInvalidCouponCode
	}

	if err = c.CheckUsable(query.userID, h.now()); err != nil {
		return CouponPreview{}, err
	}

	preview := CouponPreview{Coupon: NewCouponView(c), Discount: kernel.Zero, ApplicableAmount: kernel.Zero}
	if query.orderAmount == nil {
		return preview, nil
	}
	if err = c.CheckMinimum(*query.orderAmount); err != nil {
		return CouponPreview{}, err
	}
	preview.Discount = c.CalculateDiscount(*query.orderAmount)
	preview.ApplicableAmount = *query.orderAmount
	return preview, nil
}
