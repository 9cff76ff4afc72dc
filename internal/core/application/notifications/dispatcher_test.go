package notifications

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/notification"
	"meatdelivery/internal/core/domain/model/order"
	"meatdelivery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) ListByRecipient(
	ctx context.Context, recipientID kernel.UUID, limit int, at time.Time,
) ([]*notification.Notification, int64, error) {
	args := m.Called(ctx, recipientID, limit, at)
	return args.Get(0).([]*notification.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) DeleteExpired(ctx context.Context, at time.Time) (int64, error) {
	args := m.Called(ctx, at)
	return args.Get(0).(int64), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

func newTestDispatcher(store ports.NotificationRepository, publisher ports.EventPublisher) *Dispatcher {
	d := NewDispatcher(store, publisher, slog.New(slog.NewTextHandler(io.Discard, nil)))
	d.now = func() time.Time { return now }
	return d
}

func placedOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Chicken Breast", 2, kernel.Rupees(300))
	require.NoError(t, err)
	address, err := order.NewDeliveryAddress("12 MG Road", "Bengaluru", "Karnataka", "560001", "", "", "")
	require.NoError(t, err)
	contact, err := order.NewContact("+919900000000", "")
	require.NoError(t, err)
	pricing, err := order.CalculatePricing(kernel.Rupees(600), kernel.Zero)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), order.Draft{
		Number:        order.NewOrderNumber(now, 1),
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

func TestDispatcher_OrderChanged(t *testing.T) {
	t.Run("should store a placed notification and publish order.placed", func(t *testing.T) {
		ctx := t.Context()
		o := placedOrder(t)
		store := new(MockNotificationRepository)
		publisher := new(MockEventPublisher)
		store.On("Add", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
			return n.Type() == notification.OrderPlaced && n.RecipientID().IsEqual(o.CustomerID())
		})).Return(nil).Once()
		publisher.On("Publish", ctx, mock.MatchedBy(func(e ports.OrderEvent) bool {
			return e.Type == EventOrderPlaced && e.OrderNumber == o.Number() && e.Total == "600.00"
		})).Return(nil).Once()

		newTestDispatcher(store, publisher).OrderChanged(ctx, o)

		store.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("should publish the courier of a confirmed order", func(t *testing.T) {
		ctx := t.Context()
		o := placedOrder(t)
		courierID := kernel.NewUUID()
		require.NoError(t, o.Confirm(courierID, courierID, now))
		store := new(MockNotificationRepository)
		publisher := new(MockEventPublisher)
		store.On("Add", ctx, mock.Anything).Return(nil).Once()
		publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()

		newTestDispatcher(store, publisher).OrderChanged(ctx, o)

		event := publisher.Calls[0].Arguments.Get(1).(ports.OrderEvent)
		assert.Equal(t, EventOrderStatusChanged, event.Type)
		assert.Equal(t, "confirmed", event.Status)
		assert.Equal(t, courierID.String(), event.CourierID)
	})

	t.Run("should still publish when storing fails", func(t *testing.T) {
		ctx := t.Context()
		o := placedOrder(t)
		store := new(MockNotificationRepository)
		publisher := new(MockEventPublisher)
		store.On("Add", ctx, mock.Anything).Return(errors.New("mongo down")).Once()
		publisher.On("Publish", ctx, mock.Anything).Return(errors.New("broker down")).Once()

		assert.NotPanics(t, func() {
			newTestDispatcher(store, publisher).OrderChanged(ctx, o)
		})
		publisher.AssertExpectations(t)
	})
}
