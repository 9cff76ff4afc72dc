package commands

import (
	"errors"
	"strings"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/product"
	"meatdelivery/internal/pkg/errs"
	"meatdelivery/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds a product to the catalog, optionally with a
// running discount.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	category  kernel.Category
	price     kernel.Money
	stock     int
	discount  *product.Discount

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(
	name string,
	category kernel.Category,
	price kernel.Money,
	stock int,
	discount *product.Discount,
) (CreateProductCommand, error) {
	name = strings.TrimSpace(name)
	var nameErr, priceErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if price.IsZero() {
		priceErr = errs.NewValueIsOutOfRangeError("price", price.String(), "0.01", "unbounded")
	}
	if err := errors.Join(nameErr, category.Validate(), priceErr); err != nil {
		return CreateProductCommand{}, err
	}
	return CreateProductCommand{
		productID: kernel.NewUUID(),
		name:      name,
		category:  category,
		price:     price,
		stock:     stock,
		discount:  discount,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ProductID() kernel.UUID      { return c.productID }
func (c CreateProductCommand) Name() string                { return c.name }
func (c CreateProductCommand) Category() kernel.Category   { return c.category }
func (c CreateProductCommand) Price() kernel.Money         { return c.price }
func (c CreateProductCommand) Stock() int                  { return c.stock }
func (c CreateProductCommand) Discount() *product.Discount { return c.discount }
