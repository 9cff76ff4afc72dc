package order_test

import (
	"testing"
	"time"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func newDraft(t *testing.T) order.Draft {
	t.Helper()
	item1, err := order.NewItem(kernel.NewUUID(), "Chicken Breast", 2, kernel.Rupees(200))
	require.NoError(t, err)
	item2, err := order.NewItem(kernel.NewUUID(), "Prawns", 1, kernel.Rupees(200))
	require.NoError(t, err)
	address, err := order.NewDeliveryAddress("12 MG Road", "Bengaluru", "Karnataka", "560001", "", "Near metro", "")
	require.NoError(t, err)
	contact, err := order.NewContact("+919900000000", "")
	require.NoError(t, err)
	pricing, err := order.CalculatePricing(kernel.Rupees(600), kernel.Rupees(60))
	require.NoError(t, err)

	return order.Draft{
		Number:        order.NewOrderNumber(placedAt, 1),
		CustomerID:    kernel.NewUUID(),
		Items:         []order.Item{item1, item2},
		Address:       address,
		Contact:       contact,
		Pricing:       pricing,
		PaymentMethod: order.CashOnDelivery,
	}
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), newDraft(t), placedAt)
	require.NoError(t, err)
	return o
}

func statuses(o *order.Order) []order.Status {
	var out []order.Status
	for _, e := range o.History().Entries() {
		out = append(out, e.Status)
	}
	return out
}
