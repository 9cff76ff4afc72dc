package commands

import (
	"context"

	"meatdelivery/internal/core/domain/model/courier"
)

type ApproveCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

func NewApproveCourierCommandHandler(uowFactory CourierUoWFactory) ApproveCourierCommandHandler {
	return ApproveCourierCommandHandler{uowFactory: uowFactory}
}

// Handle approves and verifies the courier. Approving twice is harmless.
func (h ApproveCourierCommandHandler) Handle(ctx context.Context, cmd ApproveCourierCommand) (*courier.Courier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	c.Approve()
	c.Verify()

	if err = uow.CourierRepository().Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
