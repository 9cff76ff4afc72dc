package queries

import (
	"context"
	"time"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/notification"
)

// NotificationReader lists a recipient's inbox.
type NotificationReader interface {
	ListByRecipient(
		ctx context.Context,
		recipientID kernel.UUID,
		limit int,
		now time.Time,
	) ([]*notification.Notification, int64, error)
}

type NotificationView struct {
	ID        kernel.UUID       `json:"id"`
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Category  string            `json:"category"`
	Priority  string            `json:"priority"`
	Data      map[string]string `json:"data,omitempty"`
	IsRead    bool              `json:"isRead"`
	ReadAt    *time.Time        `json:"readAt,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

type NotificationsView struct {
	Items       []NotificationView `json:"items"`
	UnreadCount int64              `json:"unreadCount"`
}

type ListNotificationsQueryHandler struct {
	notifications NotificationReader
}

func NewListNotificationsQueryHandler(notifications NotificationReader) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{notifications: notifications}
}

func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) (NotificationsView, error) {
	if err := query.Validate(); err != nil {
		return NotificationsView{}, err
	}

	list, unread, err := h.notifications.ListByRecipient(ctx, query.recipientID, query.limit, time.Now())
	if err != nil {
		return NotificationsView{}, err
	}

	items := make([]NotificationView, 0, len(list))
	for _, n := range list {
		items = append(items, NotificationView{
			ID:        n.ID(),
			Type:      string(n.Type()),
			Title:     n.Title(),
			Message:   n.Message(),
			Category:  string(n.Category()),
			Priority:  string(n.Priority()),
			Data:      n.Data(),
			IsRead:    n.IsRead(),
			ReadAt:    n.ReadAt(),
			CreatedAt: n.CreatedAt(),
		})
	}
	return NotificationsView{Items: items, UnreadCount: unread}, nil
}
