package ports

import (
	"context"
	"time"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/notification"
)

// NotificationRepository stores customer and courier notifications.
type NotificationRepository interface {
	Add(ctx context.Context, n *notification.Notification) error

	// ListByRecipient returns the recipient's unexpired notifications, newest
	// first, and the number of unread ones.
	ListByRecipient(ctx context.Context, recipientID kernel.UUID, limit int, now time.Time) ([]*notification.Notification, int64, error)

	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// MarkRead persists the read timestamp.
	MarkRead(ctx context.Context, n *notification.Notification) error

	// DeleteExpired removes notifications expired at now and reports how many.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
