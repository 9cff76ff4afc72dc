// Package kernel holds the value objects shared by every aggregate of the marketplace:
//   - UUID: identifiers of customers, couriers, products, carts, coupons and orders
//   - Money: non-negative rupee amounts rounded half-up to two decimal places
//   - Category: the product categories coupons can be restricted to
//
// Values are immutable and safe for concurrent use.
package kernel
