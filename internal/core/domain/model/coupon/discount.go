package coupon

import (
	"slices"

	"meatdelivery/internal/core/domain/model/kernel"
)

// Line is one priced position a coupon may discount: a cart line or an order item.
type Line struct {
	ProductID kernel.UUID
	Category  kernel.Category
	Amount    kernel.Money
}

// CalculateDiscount prices the coupon against an applicable amount.
//
// Rules, in order:
//   - below MinimumOrderValue the discount is 0; rejecting the application is the caller's job
//   - Percentage: amount × value / 100
//   - Fixed: min(value, amount)
//   - MaximumDiscount, when set, caps the result
//   - the result is rounded half-up to two decimals
//
// The result never exceeds applicableAmount.
//
// Example:
//
//	// 10%, minimum ₹500, maximum ₹200
//	welcome.CalculateDiscount(kernel.Rupees(600)) // ₹60.00
//	// fixed ₹100
//	flat.CalculateDiscount(kernel.Rupees(60))     // ₹60.00
func (c *Coupon) CalculateDiscount(applicableAmount kernel.Money) kernel.Money {
	if applicableAmount.LessThan(c.terms.MinimumOrderValue) {
		return kernel.Zero
	}

	var discount kernel.Money
	switch c.terms.Type {
	case Percentage:
		discount = applicableAmount.Percent(c.terms.Value)
	case Fixed:
		value, err := kernel.NewMoney(c.terms.Value)
		if err != nil {
			return kernel.Zero
		}
		discount = value.Min(applicableAmount)
	default:
		return kernel.Zero
	}

	if c.terms.MaximumDiscount != nil {
		discount = discount.Min(*c.terms.MaximumDiscount)
	}

	return discount.Round().Min(applicableAmount)
}

// AppliesTo reports whether a product of the given category may be discounted.
func (c *Coupon) AppliesTo(productID kernel.UUID, category kernel.Category) bool {
	excluded := slices.ContainsFunc(c.terms.ExcludedProducts, func(id kernel.UUID) bool {
		return id.IsEqual(productID)
	})
	if excluded {
		return false
	}
	if len(c.terms.ApplicableCategories) == 0 {
		return true
	}
	return slices.Contains(c.terms.ApplicableCategories, category)
}

// ApplicableAmount sums the lines the coupon applies to. Lines for excluded
// products or categories outside ApplicableCategories do not count. There is
// no fallback to the unfiltered subtotal: a zero result means the coupon
// applies to nothing.
func (c *Coupon) ApplicableAmount(lines []Line) kernel.Money {
	total := kernel.Zero
	for _, l := range lines {
		if c.AppliesTo(l.ProductID, l.Category) {
			total = total.Add(l.Amount)
		}
	}
	return total
}
