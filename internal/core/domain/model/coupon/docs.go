// Package coupon implements the Coupon aggregate: the discount engine that
// prices a coupon against an applicable amount, and the eligibility rules that
// decide whether a coupon may be applied or redeemed at all.
//
// Discounts are computed in full precision and rounded once, half-up, to two
// decimal places. A coupon is redeemed (ApplyUsage) only when a checkout
// finalises; attaching it to a cart consumes nothing.
package coupon
