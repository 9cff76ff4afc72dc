package queries

import (
	"errors"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/order"
	"meatdelivery/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery pages through orders, newest first. Customers see their own
// orders, admins see all of them.
//
// Example:
//
//	query, err := NewListOrdersQuery(customerID, false, "delivered", NewPage(1, 10))
//	page, err := handler.Handle(ctx, query)
//	fmt.Println(page.Total, len(page.Items))
type ListOrdersQuery struct {
	viewerID kernel.UUID
	asAdmin  bool
	status   order.Status
	page     Page

	guard guard.ConstructorGuard
}

// NewListOrdersQuery accepts an empty status to list every status.
func NewListOrdersQuery(viewerID kernel.UUID, asAdmin bool, status string, page Page) (ListOrdersQuery, error) {
	if err := viewerID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	st := order.Unknown
	if status != "" {
		parsed, err := order.ParseStatus(status)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		st = parsed
	}

	return ListOrdersQuery{
		viewerID: viewerID,
		asAdmin:  asAdmin,
		status:   st,
		page:     NewPage(page.Number, page.Size),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}
