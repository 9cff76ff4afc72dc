package commands

import (
	"context"
	"time"

	"meatdelivery/internal/core/domain/model/notification"
	"meatdelivery/internal/core/ports"
	"meatdelivery/internal/pkg/errs"
)

// MarkNotificationReadCommandHandler works on the document store directly;
// notifications are outside the relational unit of work.
type MarkNotificationReadCommandHandler struct {
	store ports.NotificationRepository
}

func NewMarkNotificationReadCommandHandler(store ports.NotificationRepository) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{store: store}
}

// Handle marks the recipient's notification read. Someone else's
// notification is reported as not found.
func (h MarkNotificationReadCommandHandler) Handle(
	ctx context.Context,
	cmd MarkNotificationReadCommand,
) (*notification.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	n, err := h.store.Get(ctx, cmd.NotificationID())
	if err != nil {
		return nil, err
	}
	if !n.RecipientID().IsEqual(cmd.RecipientID()) {
		return nil, errs.NewObjectNotFoundError("notification", cmd.NotificationID())
	}

	if n.IsRead() {
		return n, nil
	}
	n.MarkRead(time.Now())

	if err = h.store.MarkRead(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}
