package order

import (
	"fmt"
	"regexp"
	"time"

	"meatdelivery/internal/pkg/errs"
)

const orderNumberPrefix = "MD"

var orderNumberPattern = regexp.MustCompile(`^MD\d{13,}\d{4}$`)

// NewOrderNumber formats "MD" + unix milliseconds + a 4-digit sequence.
// The sequence wraps at 10000; uniqueness is enforced by storage.
//
// Example:
//
//	order.NewOrderNumber(time.UnixMilli(1718445600000), 7) // "MD17184456000000007"
func NewOrderNumber(now time.Time, sequence int64) string {
	if sequence < 0 {
		sequence = -sequence
	}
	return fmt.Sprintf("%s%d%04d", orderNumberPrefix, now.UnixMilli(), sequence%10000)
}

func validateOrderNumber(n string) error {
	if !orderNumberPattern.MatchString(n) {
		return errs.NewValueIsInvalidErrorWithCause("orderNumber", fmt.Errorf("%q does not match MD<timestamp><sequence>", n))
	}
	return nil
}
