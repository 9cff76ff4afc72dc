// Package cart implements the Cart aggregate: one cart per customer holding
// snapshot-priced lines and at most one applied coupon.
//
// Totals are never accepted from outside. Every constructor and mutation ends
// by recomputing them from the lines and the applied coupon snapshot:
//
//	totalItems     = Σ quantity
//	subtotal       = Σ priceAtTime × quantity
//	discountAmount = appliedCoupon.discount, or 0
//	finalAmount    = subtotal − discountAmount
package cart
