package ports

import "context"

// OrderNumberSequence hands out increasing numbers used as the suffix of
// human-readable order numbers.
type OrderNumberSequence interface {
	Next(ctx context.Context) (int64, error)
}
