package queries

import (
	"errors"

	"meatdelivery/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery is the couriers' feed of orders waiting to be accepted:
// pending, unassigned and placed since the start of yesterday.
//
// Example:
//
//	orders, err := handler.Handle(ctx, NewGetPendingOrdersQuery())
//	if len(orders) == 0 {
//	    // nothing to pick up
//	}
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}
