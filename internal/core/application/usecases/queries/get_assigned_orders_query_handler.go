package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetAssignedOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetAssignedOrdersQueryHandler(db *gorm.DB) GetAssignedOrdersQueryHandler {
	return GetAssignedOrdersQueryHandler{db: db}
}

func (h GetAssignedOrdersQueryHandler) Handle(ctx context.Context, query GetAssignedOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return selectOrders(h.db.WithContext(ctx), `
		SELECT `+orderColumns+`
		FROM orders
		WHERE courier_id = ? AND status IN ?
		ORDER BY created_at DESC
	`, query.courierID.Raw(), activeCourierStatuses)
}
