// Package queries contains read-only operations of the CQRS split. Handlers
// read straight from the database with SQL and return flat read models; they
// never load aggregates for writing.
package queries

import (
	"meatdelivery/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page selects a slice of a listing. Numbers start at 1.
type Page struct {
	Number int
	Size   int
}

// NewPage clamps out-of-range values instead of rejecting them, so a bare
// request gets the first DefaultPageSize entries.
func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Number: number, Size: size}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Paginated is one page of a listing together with the listing's size.
type Paginated[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int64 `json:"pages"`
}

func paginated[T any](items []T, total int64, p Page) Paginated[T] {
	pages := total / int64(p.Size)
	if total%int64(p.Size) != 0 {
		pages++
	}
	return Paginated[T]{Items: items, Total: total, Page: p.Number, Limit: p.Size, Pages: pages}
}

// amount converts a stored amount. Storage only holds non-negative values.
func amount(d decimal.Decimal) kernel.Money {
	m, err := kernel.NewMoney(d)
	if err != nil {
		return kernel.Zero
	}
	return m.Round()
}
