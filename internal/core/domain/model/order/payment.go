package order

import (
	"fmt"
	"time"

	"meatdelivery/internal/pkg/errs"
)

type PaymentMethod string

const (
	CashOnDelivery PaymentMethod = "cash-on-delivery"
	Online         PaymentMethod = "online"
	Card           PaymentMethod = "card"
)

func (m PaymentMethod) Validate() error {
	switch m {
	case CashOnDelivery, Online, Card:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentInfo.method",
			fmt.Errorf("%q is not a payment method", string(m)))
	}
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) Validate() error {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentInfo.status",
			fmt.Errorf("%q is not a payment status", string(s)))
	}
}

// PaymentInfo tracks how the order is paid. Payments are settled on delivery.
type PaymentInfo struct {
	Method        PaymentMethod
	Status        PaymentStatus
	TransactionID string
	PaidAt        *time.Time
}
