package queries

import (
	"errors"

	"meatdelivery/internal/pkg/guard"
)

var ErrGetActiveCouponsQueryIsNotConstructed = errors.New(
	"GetActiveCouponsQuery must be created via NewGetActiveCouponsQuery constructor",
)

// GetActiveCouponsQuery lists coupons customers can redeem right now: active,
// inside their validity window and not exhausted.
type GetActiveCouponsQuery struct {
	page Page

	guard guard.ConstructorGuard
}

func NewGetActiveCouponsQuery(page Page) GetActiveCouponsQuery {
	return GetActiveCouponsQuery{page: NewPage(page.Number, page.Size), guard: guard.NewConstructorGuard()}
}

func (q GetActiveCouponsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveCouponsQueryIsNotConstructed)
}
