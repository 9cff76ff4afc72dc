package queries

import (
	"context"
	"time"

	"meatdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetProductQueryHandler struct {
	db *gorm.DB
}

func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle treats inactive products as missing.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductView, error) {
	if err := query.Validate(); err != nil {
		return ProductView{}, err
	}

	var rows []productRow
	err := h.db.WithContext(ctx).
		Raw(`SELECT `+productColumns+` FROM products WHERE id = ? AND is_active = ?`, query.productID.Raw(), true).
		Scan(&rows).Error
	if err != nil {
		return ProductView{}, err
	}
	if len(rows) == 0 {
		return ProductView{}, errs.NewObjectNotFoundError("product", query.productID)
	}
	return rows[0].view(time.Now())
}
