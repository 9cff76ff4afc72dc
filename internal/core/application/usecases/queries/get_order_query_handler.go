package queries

import (
	"context"

	"meatdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for an unknown order and
// errs.ErrForbidden when the viewer is neither its customer, its courier nor
// an admin.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	views, err := selectOrders(h.db.WithContext(ctx),
		`SELECT `+orderColumns+` FROM orders WHERE id = ?`, query.orderID.Raw())
	if err != nil {
		return OrderView{}, err
	}
	if len(views) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.orderID)
	}

	v := views[0]
	switch {
	case query.asAdmin:
	case v.CustomerID.IsEqual(query.viewerID):
	case v.CourierID != nil && v.CourierID.IsEqual(query.viewerID):
	default:
		return OrderView{}, errs.NewForbiddenError("you may not view this order")
	}
	return v, nil
}
