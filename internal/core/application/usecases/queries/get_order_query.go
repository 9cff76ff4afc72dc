package queries

import (
	"errors"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/errs"
	"meatdelivery/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order on behalf of a viewer. The owner, the
// assigned courier and admins may see it.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID, viewerID, false)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID  kernel.UUID
	viewerID kernel.UUID
	asAdmin  bool

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID, viewerID kernel.UUID, asAdmin bool) (GetOrderQuery, error) {
	if orderID.IsZero() {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderID")
	}
	if err := viewerID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID:  orderID,
		viewerID: viewerID,
		asAdmin:  asAdmin,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}
