package queries

import (
	"errors"

	"meatdelivery/internal/core/domain/model/courier"
	"meatdelivery/internal/pkg/guard"
)

var ErrListCouriersQueryIsNotConstructed = errors.New(
	"ListCouriersQuery must be created via NewListCouriersQuery constructor",
)

// ListCouriersQuery retrieves courier profiles for admins, sorted by name.
// An empty availability lists everyone.
//
// Example:
//
//	query, _ := NewListCouriersQuery(courier.Available)
//	couriers, err := handler.Handle(ctx, query)
//	for _, c := range couriers {
//	    fmt.Printf("%s: %d deliveries, %.2f%%\n", c.Name, c.TotalDeliveries, c.CompletionRate)
//	}
type ListCouriersQuery struct {
	availability courier.Availability

	guard guard.ConstructorGuard
}

func NewListCouriersQuery(availability courier.Availability) (ListCouriersQuery, error) {
	if availability != "" {
		if err := availability.Validate(); err != nil {
			return ListCouriersQuery{}, err
		}
	}
	return ListCouriersQuery{availability: availability, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCouriersQuery) Validate() error {
	return q.guard.Validate(ErrListCouriersQueryIsNotConstructed)
}
