package queries

import (
	"errors"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/guard"
)

var ErrGetAssignedOrdersQueryIsNotConstructed = errors.New(
	"GetAssignedOrdersQuery must be created via NewGetAssignedOrdersQuery constructor",
)

// GetAssignedOrdersQuery lists the orders a courier is currently working on.
// Delivered and cancelled orders are not included.
type GetAssignedOrdersQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetAssignedOrdersQuery(courierID kernel.UUID) (GetAssignedOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetAssignedOrdersQuery{}, err
	}
	return GetAssignedOrdersQuery{courierID: courierID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAssignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedOrdersQueryIsNotConstructed)
}
