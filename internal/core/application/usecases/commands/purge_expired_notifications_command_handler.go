package commands

import (
	"context"
	"time"

	"meatdelivery/internal/core/ports"
)

type PurgeExpiredNotificationsCommandHandler struct {
	store ports.NotificationRepository
}

func NewPurgeExpiredNotificationsCommandHandler(store ports.NotificationRepository) PurgeExpiredNotificationsCommandHandler {
	return PurgeExpiredNotificationsCommandHandler{store: store}
}

// Handle deletes notifications past their expiry and returns how many went.
func (h PurgeExpiredNotificationsCommandHandler) Handle(
	ctx context.Context,
	cmd PurgeExpiredNotificationsCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	return h.store.DeleteExpired(ctx, time.Now())
}
