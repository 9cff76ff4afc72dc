package commands_test

import (
	"testing"
	"time"

	"meatdelivery/internal/core/application/usecases/commands"
	"meatdelivery/internal/core/domain/model/courier"
	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/order"
	"meatdelivery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkDeliveredCommandHandler_Handle(t *testing.T) {
	t.Run("should deliver, settle payment and free the courier", func(t *testing.T) {
		c := approvedCourier(t)
		o := newPendingOrder(t, kernel.NewUUID(), newProduct(t, "Fish Fillet", 550, 5))
		require.NoError(t, o.Confirm(c.ID(), c.ID(), time.Now().Add(-30*time.Minute)))
		c.MarkBusy(time.Now())

		orders := new(MockOrderRepository)
		couriers := new(MockCourierRepository)
		notifier := new(MockOrderNotifier)
		uow := uowWith(orders, couriers)
		mock.InOrder(
			uow.On("Begin", anyCtx).Return(nil).Once(),
			orders.On("Get", anyCtx, o.ID()).Return(o, nil).Once(),
			couriers.On("Get", anyCtx, c.ID()).Return(c, nil).Once(),
			orders.On("ListDeliveredByCourier", anyCtx, c.ID(), services.RecentDeliveriesWindow-1).
				Return([]*order.Order{}, nil).Once(),
			orders.On("Update", anyCtx, o, order.Confirmed).Return(nil).Once(),
			couriers.On("Update", anyCtx, c).Return(nil).Once(),
			uow.On("Commit", anyCtx).Return(nil).Once(),
			uow.On("Rollback", anyCtx).Return(nil).Once(),
		)
		notifier.On("OrderChanged", anyCtx, o).Return().Once()
		cmd, err := commands.NewMarkDeliveredCommand(o.ID(), c.ID(), "")
		require.NoError(t, err)

		h := commands.NewMarkDeliveredCommandHandler(factoryOf[commands.DeliveryUoW](uow), notifier)
		delivered, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, delivered.Status())
		assert.Equal(t, []order.Status{order.Pending, order.Confirmed, order.OutForDelivery, order.Delivered}, statuses(delivered))
		assert.Equal(t, order.PaymentCompleted, delivered.Payment().Status)
		assert.NotNil(t, delivered.Delivery().ActualDeliveryTime)
		assert.Equal(t, courier.Available, c.Availability())
		assert.Equal(t, 1, c.Stats().TotalDeliveries)
		assert.Equal(t, 1, c.Stats().CompletedDeliveries)
		uow.AssertExpectations(t)
		orders.AssertExpectations(t)
		couriers.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("should refuse a courier the order is not assigned to", func(t *testing.T) {
		assigned := approvedCourier(t)
		intruder := approvedCourier(t)
		o := newPendingOrder(t, kernel.NewUUID(), newProduct(t, "Fish Fillet", 550, 5))
		require.NoError(t, o.Confirm(assigned.ID(), assigned.ID(), time.Now()))

		orders := new(MockOrderRepository)
		couriers := new(MockCourierRepository)
		uow := uowWith(orders, couriers)
		uow.On("Begin", anyCtx).Return(nil).Once()
		uow.On("Rollback", anyCtx).Return(nil).Once()
		orders.On("Get", anyCtx, o.ID()).Return(o, nil).Once()
		couriers.On("Get", anyCtx, intruder.ID()).Return(intruder, nil).Once()
		orders.On("ListDeliveredByCourier", anyCtx, intruder.ID(), mock.Anything).Return(nil, nil).Once()
		cmd, err := commands.NewMarkDeliveredCommand(o.ID(), intruder.ID(), "")
		require.NoError(t, err)

		h := commands.NewMarkDeliveredCommandHandler(factoryOf[commands.DeliveryUoW](uow), new(MockOrderNotifier))
		_, err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, order.ErrNotAssignedCourier)
		orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

func TestMarkOutForDeliveryCommandHandler_Handle(t *testing.T) {
	t.Run("should move a confirmed order out for delivery", func(t *testing.T) {
		c := approvedCourier(t)
		o := newPendingOrder(t, kernel.NewUUID(), newProduct(t, "Pork Belly", 650, 5))
		require.NoError(t, o.Confirm(c.ID(), c.ID(), time.Now()))

		orders := new(MockOrderRepository)
		notifier := new(MockOrderNotifier)
		uow := uowWith(orders)
		uow.On("Begin", anyCtx).Return(nil).Once()
		orders.On("Get", anyCtx, o.ID()).Return(o, nil).Once()
		orders.On("Update", anyCtx, o, order.Confirmed).Return(nil).Once()
		uow.On("Commit", anyCtx).Return(nil).Once()
		uow.On("Rollback", anyCtx).Return(nil).Once()
		notifier.On("OrderChanged", anyCtx, o).Return().Once()
		cmd, err := commands.NewMarkOutForDeliveryCommand(o.ID(), c.ID(), "")
		require.NoError(t, err)

		h := commands.NewMarkOutForDeliveryCommandHandler(factoryOf[commands.DeliveryUoW](uow), notifier)
		moved, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, moved.Status())
		orders.AssertExpectations(t)
	})
}
