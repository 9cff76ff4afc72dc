package queries

import (
	"errors"
	"strings"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/errs"
	"meatdelivery/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ProductFilter narrows the catalog. Zero values do not filter.
type ProductFilter struct {
	Category kernel.Category
	Search   string
	MinPrice *kernel.Money
	MaxPrice *kernel.Money
	InStock  bool
}

// ListProductsQuery pages through products on sale, newest first.
//
// Example:
//
//	query, err := NewListProductsQuery(ProductFilter{Category: kernel.CategoryChicken, InStock: true}, NewPage(1, 20))
//	page, err := handler.Handle(ctx, query)
type ListProductsQuery struct {
	filter ProductFilter
	page   Page

	guard guard.ConstructorGuard
}

func NewListProductsQuery(filter ProductFilter, page Page) (ListProductsQuery, error) {
	var list []error
	if filter.Category != "" {
		list = append(list, filter.Category.Validate())
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		list = append(list, errs.NewValueIsOutOfRangeError("minPrice", filter.MinPrice.String(), 0, filter.MaxPrice.String()))
	}
	if err := errors.Join(list...); err != nil {
		return ListProductsQuery{}, err
	}

	filter.Search = strings.TrimSpace(filter.Search)
	return ListProductsQuery{
		filter: filter,
		page:   NewPage(page.Number, page.Size),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}
