package order

import (
	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/errs"
)

var (
	// FreeDeliveryThreshold is the subtotal above which delivery is free.
	FreeDeliveryThreshold = kernel.Rupees(500)
	// StandardDeliveryFee applies to subtotals up to the threshold.
	StandardDeliveryFee = kernel.Rupees(50)
)

// Pricing is computed once at checkout and frozen.
type Pricing struct {
	Subtotal    kernel.Money
	DeliveryFee kernel.Money
	Tax         kernel.Money
	Discount    kernel.Money
	Total       kernel.Money
}

// CalculatePricing prices an order:
//
//	deliveryFee = 0 if subtotal > 500, else 50
//	tax         = 0
//	total       = subtotal + deliveryFee + tax − discount
func CalculatePricing(subtotal, discount kernel.Money) (Pricing, error) {
	if discount.GreaterThan(subtotal) {
		return Pricing{}, errs.NewValueIsOutOfRangeError("pricing.discount", discount.String(), 0, subtotal.String())
	}
	fee := StandardDeliveryFee
	if subtotal.GreaterThan(FreeDeliveryThreshold) {
		fee = kernel.Zero
	}
	p := Pricing{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         kernel.Zero,
		Discount:    discount,
	}
	p.Total = p.Subtotal.Add(p.DeliveryFee).Add(p.Tax).Sub(p.Discount)
	return p, nil
}

// Validate checks total = subtotal + deliveryFee + tax − discount.
func (p Pricing) Validate() error {
	want := p.Subtotal.Add(p.DeliveryFee).Add(p.Tax).Sub(p.Discount)
	if !want.Equal(p.Total) {
		return errs.NewValueIsInvalidError("pricing.total does not match its components")
	}
	return nil
}
