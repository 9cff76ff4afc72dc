package services_test

import (
	"testing"
	"time"

	"meatdelivery/internal/core/domain/model/courier"
	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/order"
	"meatdelivery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Mutton Curry Cut", 1, kernel.Rupees(600))
	require.NoError(t, err)
	address, err := order.NewDeliveryAddress("4 Park Street", "Kolkata", "West Bengal", "700016", "", "", "")
	require.NoError(t, err)
	contact, err := order.NewContact("+919800000000", "")
	require.NoError(t, err)
	pricing, err := order.CalculatePricing(kernel.Rupees(600), kernel.Zero)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), order.Draft{
		Number:        order.NewOrderNumber(now, 7),
		CustomerID:    kernel.NewUUID(),
		Items:         []order.Item{item},
		Address:       address,
		Contact:       contact,
		Pricing:       pricing,
		PaymentMethod: order.CashOnDelivery,
	}, now)
	require.NoError(t, err)
	return o
}

func approvedCourier(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), "Ravi", "+919811111111")
	require.NoError(t, err)
	c.Approve()
	require.NoError(t, c.SetAvailability(courier.Available, now))
	return c
}

func deliveredOrder(t *testing.T, c *courier.Courier, took time.Duration) *order.Order {
	t.Helper()
	o := newPendingOrder(t)
	require.NoError(t, o.Confirm(c.ID(), c.ID(), now))
	require.NoError(t, o.MarkOutForDelivery(c.ID(), c.ID(), "", now.Add(time.Minute)))
	require.NoError(t, o.MarkDelivered(c.ID(), "", now.Add(time.Minute+took)))
	return o
}

func TestDeliveryCoordinator_Accept(t *testing.T) {
	t.Run("should confirm the order and mark the courier busy", func(t *testing.T) {
		o := newPendingOrder(t)
		c := approvedCourier(t)

		err := services.DeliveryCoordinator{}.Accept(o, c, nil, c.ID(), now)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
		assert.True(t, o.IsAssignedTo(c.ID()))
		assert.Equal(t, courier.Busy, c.Availability())
		require.NotNil(t, o.Delivery().EstimatedTime)
		assert.Equal(t, now.Add(order.EstimatedDeliveryWindow), *o.Delivery().EstimatedTime)
	})

	t.Run("should refuse a courier with an active delivery", func(t *testing.T) {
		c := approvedCourier(t)
		active := newPendingOrder(t)
		require.NoError(t, services.DeliveryCoordinator{}.Accept(active, c, nil, c.ID(), now))
		o := newPendingOrder(t)

		err := services.DeliveryCoordinator{}.Accept(o, c, active, c.ID(), now)

		require.ErrorIs(t, err, services.ErrCourierHasActiveDelivery)
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.AssignedTo())
	})

	t.Run("should refuse an order that is already assigned", func(t *testing.T) {
		first := approvedCourier(t)
		second := approvedCourier(t)
		o := newPendingOrder(t)
		require.NoError(t, services.DeliveryCoordinator{}.Accept(o, first, nil, first.ID(), now))

		err := services.DeliveryCoordinator{}.Accept(o, second, nil, second.ID(), now)

		require.ErrorIs(t, err, order.ErrOrderAlreadyAssigned)
		assert.True(t, o.IsAssignedTo(first.ID()))
		assert.Equal(t, courier.Available, second.Availability())
	})

	t.Run("should refuse an unapproved courier", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), "Anil", "+919822222222")
		require.NoError(t, err)
		o := newPendingOrder(t)

		err = services.DeliveryCoordinator{}.Accept(o, c, nil, c.ID(), now)

		require.ErrorIs(t, err, courier.ErrCourierNotApproved)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should refuse a cancelled order", func(t *testing.T) {
		c := approvedCourier(t)
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel(o.CustomerID(), "", now))

		err := services.DeliveryCoordinator{}.Accept(o, c, nil, c.ID(), now)

		require.ErrorIs(t, err, order.ErrOrderNotPending)
	})
}

func TestDeliveryCoordinator_Deliver(t *testing.T) {
	t.Run("should deliver and average over the recent window", func(t *testing.T) {
		c := approvedCourier(t)
		previous := []*order.Order{
			deliveredOrder(t, c, 20*time.Minute),
			deliveredOrder(t, c, 40*time.Minute),
		}
		o := newPendingOrder(t)
		require.NoError(t, services.DeliveryCoordinator{}.Accept(o, c, nil, c.ID(), now))
		require.NoError(t, o.MarkOutForDelivery(c.ID(), c.ID(), "", now.Add(5*time.Minute)))

		err := services.DeliveryCoordinator{}.Deliver(o, c, previous, "", now.Add(35*time.Minute))

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, courier.Available, c.Availability())
		assert.Equal(t, 1, c.Stats().CompletedDeliveries)
		assert.Equal(t, 30, c.Stats().AverageDeliveryTime)
	})

	t.Run("should cap the average at the window size", func(t *testing.T) {
		c := approvedCourier(t)
		var previous []*order.Order
		for range services.RecentDeliveriesWindow - 1 {
			previous = append(previous, deliveredOrder(t, c, 10*time.Minute))
		}
		previous = append(previous, deliveredOrder(t, c, 200*time.Minute))
		o := newPendingOrder(t)
		require.NoError(t, services.DeliveryCoordinator{}.Accept(o, c, nil, c.ID(), now))
		require.NoError(t, o.MarkOutForDelivery(c.ID(), c.ID(), "", now))

		err := services.DeliveryCoordinator{}.Deliver(o, c, previous, "", now.Add(10*time.Minute))

		require.NoError(t, err)
		assert.Equal(t, 10, c.Stats().AverageDeliveryTime)
	})

	t.Run("should refuse a courier the order is not assigned to", func(t *testing.T) {
		assigned := approvedCourier(t)
		other := approvedCourier(t)
		o := newPendingOrder(t)
		require.NoError(t, services.DeliveryCoordinator{}.Accept(o, assigned, nil, assigned.ID(), now))

		err := services.DeliveryCoordinator{}.Deliver(o, other, nil, "", now)

		require.ErrorIs(t, err, order.ErrNotAssignedCourier)
		assert.Zero(t, other.Stats().TotalDeliveries)
	})
}

func TestDeliveryCoordinator_ReleaseCourier(t *testing.T) {
	t.Run("should free the courier of a cancelled order", func(t *testing.T) {
		c := approvedCourier(t)
		o := newPendingOrder(t)
		require.NoError(t, services.DeliveryCoordinator{}.Accept(o, c, nil, c.ID(), now))
		require.NoError(t, o.Cancel(o.CustomerID(), "changed my mind", now))

		services.DeliveryCoordinator{}.ReleaseCourier(o, c, now)

		assert.Equal(t, courier.Available, c.Availability())
	})

	t.Run("should leave the courier busy while the order is active", func(t *testing.T) {
		c := approvedCourier(t)
		o := newPendingOrder(t)
		require.NoError(t, services.DeliveryCoordinator{}.Accept(o, c, nil, c.ID(), now))

		services.DeliveryCoordinator{}.ReleaseCourier(o, c, now)

		assert.Equal(t, courier.Busy, c.Availability())
	})
}
