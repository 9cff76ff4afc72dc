package cart

import (
	"errors"
	"time"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/errs"
)

// Item is a cart line. PriceAtTime is the product price when the line was last touched.
type Item struct {
	id          kernel.UUID
	productID   kernel.UUID
	quantity    int
	priceAtTime kernel.Money
	addedAt     time.Time
}

// RestoreItem rebuilds a line from storage.
func RestoreItem(id, productID kernel.UUID, quantity int, priceAtTime kernel.Money, addedAt time.Time) (Item, error) {
	err := errors.Join(id.Validate(), productID.Validate(), validateQuantity(quantity))
	if err != nil {
		return Item{}, err
	}
	return Item{
		id:          id,
		productID:   productID,
		quantity:    quantity,
		priceAtTime: priceAtTime,
		addedAt:     addedAt,
	}, nil
}

func validateQuantity(q int) error {
	if q < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", q, 1, "unbounded")
	}
	return nil
}

func (i Item) ID() kernel.UUID {
	return i.id
}

func (i Item) ProductID() kernel.UUID {
	return i.productID
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) PriceAtTime() kernel.Money {
	return i.priceAtTime
}

func (i Item) AddedAt() time.Time {
	return i.addedAt
}

// Subtotal is priceAtTime × quantity.
func (i Item) Subtotal() kernel.Money {
	return i.priceAtTime.Times(i.quantity)
}
