package order

import (
	"errors"
	"strings"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/errs"
)

// Item is an order line frozen at checkout.
type Item struct {
	ProductID   kernel.UUID
	Name        string
	Quantity    int
	PriceAtTime kernel.Money
	Subtotal    kernel.Money
}

// NewItem snapshots a line; Subtotal is priceAtTime × quantity.
func NewItem(productID kernel.UUID, name string, quantity int, priceAtTime kernel.Money) (Item, error) {
	var qtyErr error
	if quantity < 1 {
		qtyErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	if err := errors.Join(productID.Validate(), qtyErr); err != nil {
		return Item{}, err
	}
	return Item{
		ProductID:   productID,
		Name:        strings.TrimSpace(name),
		Quantity:    quantity,
		PriceAtTime: priceAtTime,
		Subtotal:    priceAtTime.Times(quantity),
	}, nil
}
