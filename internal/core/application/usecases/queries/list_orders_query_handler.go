package queries

import (
	"context"
	"strings"

	"meatdelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (Paginated[OrderView], error) {
	if err := query.Validate(); err != nil {
		return Paginated[OrderView]{}, err
	}

	var (
		conditions []string
		args       []any
	)
	if !query.asAdmin {
		conditions = append(conditions, "customer_id = ?")
		args = append(args, query.viewerID.Raw())
	}
	if query.status != order.Unknown {
		conditions = append(conditions, "status = ?")
		args = append(args, query.status.String())
	}
	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	db := h.db.WithContext(ctx)

	var total int64
	if err := db.Raw(`SELECT COUNT(*) FROM orders`+where, args...).Scan(&total).Error; err != nil {
		return Paginated[OrderView]{}, err
	}

	views, err := selectOrders(db,
		`SELECT `+orderColumns+` FROM orders`+where+` ORDER BY created_at DESC, number DESC LIMIT ? OFFSET ?`,
		append(args, query.page.Size, query.page.Offset())...,
	)
	if err != nil {
		return Paginated[OrderView]{}, err
	}

	return paginated(views, total, query.page), nil
}
