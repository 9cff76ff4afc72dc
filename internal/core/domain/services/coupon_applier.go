package services

import (
	"time"

	"meatdelivery/internal/core/domain/model/cart"
	"meatdelivery/internal/core/domain/model/coupon"
	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/product"
	"meatdelivery/internal/pkg/errs"
)

// CouponApplier runs the apply-to-cart protocol.
type CouponApplier struct{}

// CartLines turns cart items into coupon lines using the products' categories.
// Every product of the cart must be present in products.
func CartLines(c *cart.Cart, products map[kernel.UUID]*product.Product) ([]coupon.Line, error) {
	items := c.Items()
	lines := make([]coupon.Line, 0, len(items))
	for _, it := range items {
		p, ok := products[it.ProductID()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("product", it.ProductID())
		}
		lines = append(lines, coupon.Line{
			ProductID: it.ProductID(),
			Category:  p.Category(),
			Amount:    it.Subtotal(),
		})
	}
	return lines, nil
}

// Price validates a coupon for a customer and prices it against lines:
//
//  1. the coupon must be currently valid and under the customer's cap
//  2. the applicable amount is the sum of lines the coupon applies to
//  3. that amount must be positive and reach the minimum order value
//  4. the discount is computed by the coupon's discount rules
func (CouponApplier) Price(cp *coupon.Coupon, lines []coupon.Line, userID kernel.UUID, now time.Time) (kernel.Money, error) {
	if err := cp.Validate(); err != nil {
		return kernel.Zero, err
	}
	if err := cp.CheckUsable(userID, now); err != nil {
		return kernel.Zero, err
	}
	applicable := cp.ApplicableAmount(lines)
	if err := cp.CheckMinimum(applicable); err != nil {
		return kernel.Zero, err
	}
	return cp.CalculateDiscount(applicable), nil
}

// Apply attaches the coupon to the cart. No usage is consumed.
//
// Example:
//
//	discount, err := services.CouponApplier{}.Apply(c, welcome10, products, userID, now)
//	// cart of ₹600 with 10% (min ₹500, max ₹200): discount ₹60, final ₹540
func (a CouponApplier) Apply(
	c *cart.Cart,
	cp *coupon.Coupon,
	products map[kernel.UUID]*product.Product,
	userID kernel.UUID,
	now time.Time,
) (kernel.Money, error) {
	if c.IsEmpty() {
		return kernel.Zero, cart.ErrCartIsEmpty
	}
	lines, err := CartLines(c, products)
	if err != nil {
		return kernel.Zero, err
	}
	discount, err := a.Price(cp, lines, userID, now)
	if err != nil {
		return kernel.Zero, err
	}
	err = c.ApplyCoupon(cart.AppliedCoupon{
		CouponID:  cp.ID(),
		Code:      cp.Code(),
		Discount:  discount,
		AppliedAt: now,
	})
	if err != nil {
		return kernel.Zero, err
	}
	return discount, nil
}

// Refresh re-prices the cart's coupon after its items changed. A coupon that
// no longer applies (nil, invalid, below minimum) is removed; the returned
// flag reports the removal.
func (a CouponApplier) Refresh(
	c *cart.Cart,
	cp *coupon.Coupon,
	products map[kernel.UUID]*product.Product,
	userID kernel.UUID,
	now time.Time,
) (bool, error) {
	applied := c.AppliedCoupon()
	if applied == nil {
		return false, nil
	}
	if cp == nil || !cp.ID().IsEqual(applied.CouponID) || c.IsEmpty() {
		return true, c.RemoveCoupon(now)
	}
	lines, err := CartLines(c, products)
	if err != nil {
		return false, err
	}
	discount, err := a.Price(cp, lines, userID, now)
	if err != nil {
		if errs.IsValidation(err) {
			return false, err
		}
		return true, c.RemoveCoupon(now)
	}
	applied.Discount = discount
	return false, c.ApplyCoupon(*applied)
}
