package commands_test

import (
	"testing"

	"meatdelivery/internal/core/application/usecases/commands"
	"meatdelivery/internal/core/domain/model/courier"
	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/order"
	"meatdelivery/internal/core/domain/services"
	"meatdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAcceptOrderCommandHandler_Handle(t *testing.T) {
	setup := func(t *testing.T) (*order.Order, *courier.Courier, *MockOrderRepository, *MockCourierRepository, *MockUoW) {
		t.Helper()
		o := newPendingOrder(t, kernel.NewUUID(), newProduct(t, "Mutton Keema", 700, 5))
		c := approvedCourier(t)
		orders := new(MockOrderRepository)
		couriers := new(MockCourierRepository)
		uow := uowWith(orders, couriers)
		uow.On("Begin", anyCtx).Return(nil).Once()
		uow.On("Rollback", anyCtx).Return(nil).Once()
		orders.On("Get", anyCtx, o.ID()).Return(o, nil).Once()
		couriers.On("Get", anyCtx, c.ID()).Return(c, nil).Once()
		return o, c, orders, couriers, uow
	}

	t.Run("should confirm the order and mark the courier busy", func(t *testing.T) {
		o, c, orders, couriers, uow := setup(t)
		notifier := new(MockOrderNotifier)
		mock.InOrder(
			orders.On("FindActiveByCourier", anyCtx, c.ID()).Return(nil, nil).Once(),
			orders.On("UpdateIfUnassigned", anyCtx, o).Return(nil).Once(),
			couriers.On("Update", anyCtx, c).Return(nil).Once(),
			uow.On("Commit", anyCtx).Return(nil).Once(),
			notifier.On("OrderChanged", anyCtx, o).Return().Once(),
		)
		cmd, err := commands.NewAcceptOrderCommand(o.ID(), c.ID())
		require.NoError(t, err)

		h := commands.NewAcceptOrderCommandHandler(factoryOf[commands.DeliveryUoW](uow), notifier)
		accepted, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, accepted.Status())
		assert.True(t, accepted.IsAssignedTo(c.ID()))
		assert.Equal(t, courier.Busy, c.Availability())
		orders.AssertExpectations(t)
		couriers.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("should report a lost race as already assigned", func(t *testing.T) {
		o, c, orders, couriers, uow := setup(t)
		orders.On("FindActiveByCourier", anyCtx, c.ID()).Return(nil, nil).Once()
		orders.On("UpdateIfUnassigned", anyCtx, o).Return(order.ErrOrderAlreadyAssigned).Once()
		cmd, err := commands.NewAcceptOrderCommand(o.ID(), c.ID())
		require.NoError(t, err)

		h := commands.NewAcceptOrderCommandHandler(factoryOf[commands.DeliveryUoW](uow), new(MockOrderNotifier))
		_, err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, order.ErrOrderAlreadyAssigned)
		couriers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should refuse a courier with an active delivery", func(t *testing.T) {
		o, c, orders, couriers, uow := setup(t)
		active := newPendingOrder(t, kernel.NewUUID(), newProduct(t, "Prawns", 400, 5))
		require.NoError(t, active.Confirm(c.ID(), c.ID(), active.CreatedAt()))
		orders.On("FindActiveByCourier", anyCtx, c.ID()).Return(active, nil).Once()
		cmd, err := commands.NewAcceptOrderCommand(o.ID(), c.ID())
		require.NoError(t, err)

		h := commands.NewAcceptOrderCommandHandler(factoryOf[commands.DeliveryUoW](uow), new(MockOrderNotifier))
		_, err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, services.ErrCourierHasActiveDelivery)
		assert.Equal(t, order.Pending, o.Status())
		orders.AssertNotCalled(t, "UpdateIfUnassigned", mock.Anything, mock.Anything)
		couriers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestAssignCourierCommandHandler_Handle(t *testing.T) {
	t.Run("should record the admin as the actor of the confirmation", func(t *testing.T) {
		adminID := kernel.NewUUID()
		o := newPendingOrder(t, kernel.NewUUID(), newProduct(t, "Chicken Wings", 250, 5))
		c := approvedCourier(t)
		orders := new(MockOrderRepository)
		couriers := new(MockCourierRepository)
		uow := uowWith(orders, couriers)
		notifier := new(MockOrderNotifier)
		uow.On("Begin", anyCtx).Return(nil).Once()
		orders.On("Get", anyCtx, o.ID()).Return(o, nil).Once()
		couriers.On("Get", anyCtx, c.ID()).Return(c, nil).Once()
		orders.On("FindActiveByCourier", anyCtx, c.ID()).Return(nil, nil).Once()
		orders.On("UpdateIfUnassigned", anyCtx, o).Return(nil).Once()
		couriers.On("Update", anyCtx, c).Return(nil).Once()
		uow.On("Commit", anyCtx).Return(nil).Once()
		uow.On("Rollback", anyCtx).Return(nil).Once()
		notifier.On("OrderChanged", anyCtx, o).Return().Once()
		cmd, err := commands.NewAssignCourierCommand(o.ID(), c.ID(), adminID)
		require.NoError(t, err)

		h := commands.NewAssignCourierCommandHandler(factoryOf[commands.DeliveryUoW](uow), notifier)
		assigned, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		entries := assigned.History().Entries()
		last := entries[len(entries)-1]
		assert.Equal(t, order.Confirmed, last.Status)
		require.NotNil(t, last.UpdatedBy)
		assert.Equal(t, adminID, *last.UpdatedBy)
		uow.AssertExpectations(t)
	})

	t.Run("should reject a zero courier id", func(t *testing.T) {
		_, err := commands.NewAssignCourierCommand(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "deliveryBoyId")
	})
}
