package kernel

import (
	"fmt"
	"strings"

	"meatdelivery/internal/pkg/errs"
)

// Category is a product category of the catalog.
type Category string

const (
	CategoryChicken   Category = "chicken"
	CategoryMutton    Category = "mutton"
	CategoryBeef      Category = "beef"
	CategoryPork      Category = "pork"
	CategoryFish      Category = "fish"
	CategorySeafood   Category = "seafood"
	CategoryProcessed Category = "processed"
)

var categories = map[Category]struct{}{
	CategoryChicken:   {},
	CategoryMutton:    {},
	CategoryBeef:      {},
	CategoryPork:      {},
	CategoryFish:      {},
	CategorySeafood:   {},
	CategoryProcessed: {},
}

// ParseCategory accepts the lowercase category name, ignoring surrounding space and case.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

func (c Category) Validate() error {
	if _, ok := categories[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a known category", string(c)))
	}
	return nil
}

func (c Category) String() string {
	return string(c)
}
