package errs

import "fmt"

// UnknownAvailability is used when the remaining stock was not observed,
// e.g. when a conditional decrement matched no rows.
const UnknownAvailability = -1

type InsufficientStockError struct {
	ProductID any
	Requested int
	Available int
}

func NewInsufficientStockError(productID any, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductID: productID,
		Requested: requested,
		Available: available,
	}
}

func (e *InsufficientStockError) Error() string {
	if e.Available == UnknownAvailability {
		return fmt.Sprintf("%s: product %v, requested %d", ErrInsufficientStock, e.ProductID, e.Requested)
	}
	return fmt.Sprintf("%s: product %v, requested %d, available %d",
		ErrInsufficientStock, e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
