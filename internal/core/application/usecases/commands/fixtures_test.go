package commands_test

import (
	"testing"
	"time"

	"meatdelivery/internal/core/domain/model/cart"
	"meatdelivery/internal/core/domain/model/coupon"
	"meatdelivery/internal/core/domain/model/courier"
	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/order"
	"meatdelivery/internal/core/domain/model/product"
	"meatdelivery/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newProduct(t *testing.T, name string, price int64, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), name, kernel.CategoryChicken, kernel.Rupees(price), stock)
	require.NoError(t, err)
	return p
}

func newCartWith(t *testing.T, userID kernel.UUID, lines map[*product.Product]int) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID(), userID, time.Now())
	require.NoError(t, err)
	for p, qty := range lines {
		require.NoError(t, c.AddItem(p, qty, time.Now()))
	}
	return c
}

func catalogOf(products ...*product.Product) map[kernel.UUID]*product.Product {
	out := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		out[p.ID()] = p
	}
	return out
}

func welcomeCoupon(t *testing.T) *coupon.Coupon {
	t.Helper()
	cp, err := coupon.NewCoupon(kernel.NewUUID(), coupon.Terms{
		Code:              "WELCOME10",
		Type:              coupon.Percentage,
		Value:             decimal.NewFromInt(10),
		MinimumOrderValue: kernel.Rupees(500),
		MaximumDiscount:   ptr(kernel.Rupees(200)),
		ValidFrom:         time.Now().Add(-24 * time.Hour),
		ValidTo:           time.Now().Add(30 * 24 * time.Hour),
	})
	require.NoError(t, err)
	return cp
}

func applyCoupon(t *testing.T, c *cart.Cart, cp *coupon.Coupon, products map[kernel.UUID]*product.Product) {
	t.Helper()
	_, err := services.CouponApplier{}.Apply(c, cp, products, c.UserID(), time.Now())
	require.NoError(t, err)
}

func newPendingOrder(t *testing.T, customerID kernel.UUID, products ...*product.Product) *order.Order {
	t.Helper()
	items := make([]order.Item, 0, len(products))
	subtotal := kernel.Zero
	for _, p := range products {
		item, err := order.NewItem(p.ID(), p.Name(), 1, p.Price())
		require.NoError(t, err)
		items = append(items, item)
		subtotal = subtotal.Add(item.Subtotal)
	}
	address, err := order.NewDeliveryAddress("12 MG Road", "Bengaluru", "Karnataka", "560001", "", "", "")
	require.NoError(t, err)
	contact, err := order.NewContact("+919900000000", "")
	require.NoError(t, err)
	pricing, err := order.CalculatePricing(subtotal, kernel.Zero)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), order.Draft{
		Number:        order.NewOrderNumber(time.Now(), 1),
		CustomerID:    customerID,
		Items:         items,
		Address:       address,
		Contact:       contact,
		Pricing:       pricing,
		PaymentMethod: order.CashOnDelivery,
	}, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	return o
}

func approvedCourier(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), "Ravi Kumar", "+919811111111")
	require.NoError(t, err)
	c.Approve()
	require.NoError(t, c.SetAvailability(courier.Available, time.Now()))
	return c
}

func statuses(o *order.Order) []order.Status {
	var out []order.Status
	for _, e := range o.History().Entries() {
		out = append(out, e.Status)
	}
	return out
}

// uowWith wires the repositories into a mock unit of work. Accessors may be
// called any number of times.
func uowWith(repos ...any) *MockUoW {
	uow := new(MockUoW)
	for _, r := range repos {
		switch repo := r.(type) {
		case *MockCartRepository:
			uow.On("CartRepository").Return(repo).Maybe()
		case *MockProductRepository:
			uow.On("ProductRepository").Return(repo).Maybe()
		case *MockCouponRepository:
			uow.On("CouponRepository").Return(repo).Maybe()
		case *MockOrderRepository:
			uow.On("OrderRepository").Return(repo).Maybe()
		case *MockCourierRepository:
			uow.On("CourierRepository").Return(repo).Maybe()
		case *MockOrderNumberSequence:
			uow.On("OrderNumberSequence").Return(repo).Maybe()
		}
	}
	return uow
}

func factoryOf[T any](uow T) *MockFactory[T] {
	f := new(MockFactory[T])
	f.On("Create").Return(uow).Once()
	return f
}

var anyCtx = mock.Anything
