package commands

import (
	"errors"

	"meatdelivery/internal/pkg/guard"
)

var ErrPurgeExpiredNotificationsCommandIsNotConstructed = errors.New(
	"PurgeExpiredNotificationsCommand must be created via NewPurgeExpiredNotificationsCommand constructor",
)

// PurgeExpiredNotificationsCommand is a parameterless command run by the
// notification cleanup job.
type PurgeExpiredNotificationsCommand struct {
	guard guard.ConstructorGuard
}

func NewPurgeExpiredNotificationsCommand() PurgeExpiredNotificationsCommand {
	return PurgeExpiredNotificationsCommand{guard: guard.NewConstructorGuard()}
}

func (c PurgeExpiredNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredNotificationsCommandIsNotConstructed)
}
