package queries

import (
	"errors"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/guard"
)

var ErrGetCourierStatsQueryIsNotConstructed = errors.New(
	"GetCourierStatsQuery must be created via NewGetCourierStatsQuery constructor",
)

// GetCourierStatsQuery reports a courier's delivery record and earnings.
type GetCourierStatsQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCourierStatsQuery(courierID kernel.UUID) (GetCourierStatsQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierStatsQuery{}, err
	}
	return GetCourierStatsQuery{courierID: courierID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCourierStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierStatsQueryIsNotConstructed)
}
