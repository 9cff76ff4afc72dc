package notificationrepo

import (
	"time"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/notification"
)

type document struct {
	ID          string            `bson:"_id"`
	RecipientID string            `bson:"recipient_id"`
	Type        string            `bson:"type"`
	Title       string            `bson:"title"`
	Message     string            `bson:"message"`
	Category    string            `bson:"category"`
	Priority    string            `bson:"priority"`
	Data        map[string]string `bson:"data,omitempty"`
	ReadAt      *time.Time        `bson:"read_at"`
	CreatedAt   time.Time         `bson:"created_at"`
	ExpiresAt   time.Time         `bson:"expires_at"`
}

func fromDomain(n *notification.Notification) document {
	return document{
		ID:          n.ID().String(),
		RecipientID: n.RecipientID().String(),
		Type:        string(n.Type()),
		Title:       n.Title(),
		Message:     n.Message(),
		Category:    string(n.Category()),
		Priority:    string(n.Priority()),
		Data:        n.Data(),
		ReadAt:      n.ReadAt(),
		CreatedAt:   n.CreatedAt().UTC(),
		ExpiresAt:   n.ExpiresAt().UTC(),
	}
}

func (d document) toDomain() (*notification.Notification, error) {
	id, err := kernel.UUIDFromString(d.ID)
	if err != nil {
		return nil, err
	}
	recipientID, err := kernel.UUIDFromString(d.RecipientID)
	if err != nil {
		return nil, err
	}
	return notification.Restore(
		id, recipientID,
		notification.Type(d.Type),
		d.Title, d.Message,
		notification.Category(d.Category),
		notification.Priority(d.Priority),
		d.Data,
		d.ReadAt,
		d.CreatedAt, d.ExpiresAt,
	)
}
