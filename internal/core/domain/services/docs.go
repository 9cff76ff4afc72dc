// Package services holds domain logic that spans aggregates.
//
// CouponApplier prices a coupon against a cart and attaches or refreshes the
// cart's coupon snapshot. DeliveryCoordinator couples the order lifecycle to
// the courier: one active delivery per courier, availability flipping with
// accept and deliver, and the courier's rolling statistics.
//
// Both are stateless and never touch storage; command handlers load the
// aggregates, call the service and persist the results.
package services
