package queries

import (
	"context"
	"time"

	"meatdelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetPendingOrdersQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db, now: time.Now}
}

// Handle lists the feed newest first. Older pending orders are left to
// admins, who assign them explicitly.
func (h GetPendingOrdersQueryHandler) Handle(ctx context.Context, query GetPendingOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := h.now()
	since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)

	return selectOrders(h.db.WithContext(ctx), `
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = ? AND courier_id IS NULL AND created_at >= ?
		ORDER BY created_at DESC
	`, order.Pending.String(), since)
}
