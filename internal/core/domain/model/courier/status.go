package courier

import (
	"fmt"

	"meatdelivery/internal/pkg/errs"
)

// Status is the employment status of a courier.
type Status string

const (
	Active    Status = "active"
	Inactive  Status = "inactive"
	OnLeave   Status = "on-leave"
	Suspended Status = "suspended"
)

func (s Status) Validate() error {
	switch s {
	case Active, Inactive, OnLeave, Suspended:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a courier status", string(s)))
	}
}

// Availability tells whether a courier can take work right now.
type Availability string

const (
	Available Availability = "available"
	Busy      Availability = "busy"
	Offline   Availability = "offline"
)

func (a Availability) Validate() error {
	switch a {
	case Available, Busy, Offline:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("availability",
			fmt.Errorf("%q is not a courier availability", string(a)))
	}
}
