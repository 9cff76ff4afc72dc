package queries

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

type ListProductsQueryHandler struct {
	db *gorm.DB
}

func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) (Paginated[ProductView], error) {
	if err := query.Validate(); err != nil {
		return Paginated[ProductView]{}, err
	}

	conditions := []string{"is_active = ?"}
	args := []any{true}
	f := query.filter
	if f.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, string(f.Category))
	}
	if f.Search != "" {
		conditions = append(conditions, "LOWER(name) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.Search)+"%")
	}
	if f.MinPrice != nil {
		conditions = append(conditions, "price >= ?")
		args = append(args, f.MinPrice.Decimal())
	}
	if f.MaxPrice != nil {
		conditions = append(conditions, "price <= ?")
		args = append(args, f.MaxPrice.Decimal())
	}
	if f.InStock {
		conditions = append(conditions, "stock_quantity > 0")
	}
	where := " WHERE " + strings.Join(conditions, " AND ")

	db := h.db.WithContext(ctx)

	var total int64
	if err := db.Raw(`SELECT COUNT(*) FROM products`+where, args...).Scan(&total).Error; err != nil {
		return Paginated[ProductView]{}, err
	}

	var rows []productRow
	err := db.Raw(`SELECT `+productColumns+` FROM products`+where+` ORDER BY created_at DESC, name LIMIT ? OFFSET ?`,
		append(args, query.page.Size, query.page.Offset())...).Scan(&rows).Error
	if err != nil {
		return Paginated[ProductView]{}, err
	}

	now := time.Now()
	products := make([]ProductView, 0, len(rows))
	for _, r := range rows {
		v, viewErr := r.view(now)
		if viewErr != nil {
			return Paginated[ProductView]{}, viewErr
		}
		products = append(products, v)
	}
	return paginated(products, total, query.page), nil
}
