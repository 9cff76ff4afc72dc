// Package errs provides the error taxonomy shared by the marketplace core.
//
// Every error kind follows the same pattern:
//   - a sentinel error variable (e.g., ErrObjectNotFound) usable with errors.Is
//   - a struct type carrying the details (e.g., ObjectNotFoundError) usable with errors.As
//   - constructor functions with and without a cause
//   - an Error method that formats the details and an Unwrap method returning the sentinel
//
// The HTTP adapter classifies failures by sentinel:
//   - ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange: validation errors (400)
//   - ErrObjectNotFound: missing coupon, cart, order, product or courier (404)
//   - ErrConflict: exhausted coupons, invalid status transitions, assignment races (409)
//   - ErrForbidden: acting on another customer's order or another courier's delivery (403)
//   - ErrInsufficientStock: requested quantity exceeds availability (400)
package errs
