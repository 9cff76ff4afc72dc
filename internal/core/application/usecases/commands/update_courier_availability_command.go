package commands

import (
	"errors"

	"meatdelivery/internal/core/domain/model/courier"
	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/guard"
)

var ErrUpdateCourierAvailabilityCommandIsNotConstructed = errors.New(
	"UpdateCourierAvailabilityCommand must be created via NewUpdateCourierAvailabilityCommand constructor",
)

// UpdateCourierAvailabilityCommand switches a courier between available and
// offline. Busy is managed by accept and deliver and cannot be requested.
// Logging out is the same command with courier.Offline.
type UpdateCourierAvailabilityCommand struct { //nolint:recvcheck //using for validation
	courierID    kernel.UUID
	availability courier.Availability

	guard guard.ConstructorGuard
}

func NewUpdateCourierAvailabilityCommand(
	courierID kernel.UUID,
	availability courier.Availability,
) (UpdateCourierAvailabilityCommand, error) {
	var availabilityErr error
	if availability == courier.Busy {
		availabilityErr = courier.ErrBusyIsManaged
	} else {
		availabilityErr = availability.Validate()
	}
	if err := errors.Join(courierID.Validate(), availabilityErr); err != nil {
		return UpdateCourierAvailabilityCommand{}, err
	}
	return UpdateCourierAvailabilityCommand{
		courierID:    courierID,
		availability: availability,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCourierAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierAvailabilityCommandIsNotConstructed)
}

func (c UpdateCourierAvailabilityCommand) CourierID() kernel.UUID             { return c.courierID }
func (c UpdateCourierAvailabilityCommand) Availability() courier.Availability { return c.availability }
