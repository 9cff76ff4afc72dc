package queries

import (
	"errors"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/guard"
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

// ListNotificationsQuery reads the newest notifications of a recipient.
type ListNotificationsQuery struct {
	recipientID kernel.UUID
	limit       int

	guard guard.ConstructorGuard
}

// NewListNotificationsQuery clamps limit the way pages are clamped.
func NewListNotificationsQuery(recipientID kernel.UUID, limit int) (ListNotificationsQuery, error) {
	if err := recipientID.Validate(); err != nil {
		return ListNotificationsQuery{}, err
	}
	return ListNotificationsQuery{
		recipientID: recipientID,
		limit:       NewPage(1, limit).Size,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}
