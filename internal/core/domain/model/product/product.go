// Package product models the catalog entries the cart and checkout read.
// Catalog maintenance lives outside this service; the core only reads prices,
// categories and stock, and adjusts stock through the product repository.
package product

import (
	"errors"
	"strings"
	"time"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/errs"
	"meatdelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrProductIsNotConstructed = errors.New("product must be created via NewProduct or RestoreProduct")

// Discount is a time-limited percentage markdown on the base price.
type Discount struct {
	Percentage decimal.Decimal
	ValidUntil *time.Time
}

// Product is a read model of a catalog entry.
type Product struct {
	id            kernel.UUID
	name          string
	category      kernel.Category
	price         kernel.Money
	discount      Discount
	isActive      bool
	stockQuantity int
	guard         guard.ConstructorGuard
}

// NewProduct creates an active product with the given stock.
func NewProduct(
	id kernel.UUID,
	name string,
	category kernel.Category,
	price kernel.Money,
	stockQuantity int,
) (*Product, error) {
	p := &Product{guard: guard.NewConstructorGuard(), isActive: true}
	err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCategory(category),
		p.setStock(stockQuantity),
	)
	if err != nil {
		return nil, err
	}
	p.price = price
	return p, nil
}

// RestoreProduct rebuilds a product from storage.
func RestoreProduct(
	id kernel.UUID,
	name string,
	category kernel.Category,
	price kernel.Money,
	discount Discount,
	isActive bool,
	stockQuantity int,
) (*Product, error) {
	p, err := NewProduct(id, name, category, price, stockQuantity)
	if err != nil {
		return nil, err
	}
	if err = p.SetDiscount(discount); err != nil {
		return nil, err
	}
	p.isActive = isActive
	return p, nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setCategory(c kernel.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	p.category = c
	return nil
}

func (p *Product) setStock(q int) error {
	if q < 0 {
		return errs.NewValueIsOutOfRangeError("stockQuantity", q, 0, "unbounded")
	}
	p.stockQuantity = q
	return nil
}

// SetDiscount replaces the markdown. Percentage must be within [0, 100].
func (p *Product) SetDiscount(d Discount) error {
	if d.Percentage.IsNegative() || d.Percentage.GreaterThan(decimal.NewFromInt(100)) {
		return errs.NewValueIsOutOfRangeError("discount.percentage", d.Percentage.String(), 0, 100)
	}
	p.discount = d
	return nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID           { return p.id }
func (p *Product) Name() string              { return p.name }
func (p *Product) Category() kernel.Category { return p.category }
func (p *Product) Price() kernel.Money       { return p.price }
func (p *Product) Discount() Discount        { return p.discount }
func (p *Product) IsActive() bool            { return p.isActive }
func (p *Product) StockQuantity() int        { return p.stockQuantity }
func (p *Product) InStock() bool             { return p.stockQuantity > 0 }
func (p *Product) Deactivate()               { p.isActive = false }

// DiscountedPrice is the price a cart line snapshots at time now: the base
// price reduced by the product discount while it is valid, rounded half-up.
func (p *Product) DiscountedPrice(now time.Time) kernel.Money {
	d := p.discount
	if !d.Percentage.IsPositive() {
		return p.price
	}
	if d.ValidUntil != nil && now.After(*d.ValidUntil) {
		return p.price
	}
	return p.price.Sub(p.price.Percent(d.Percentage)).Round()
}

// CheckAvailable verifies the product can be sold in the requested quantity.
func (p *Product) CheckAvailable(quantity int) error {
	if !p.isActive {
		return errs.NewConflictError("product is not available")
	}
	if !p.InStock() || p.stockQuantity < quantity {
		return errs.NewInsufficientStockError(p.id, quantity, p.stockQuantity)
	}
	return nil
}
