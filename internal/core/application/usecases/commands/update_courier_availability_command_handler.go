package commands

import (
	"context"
	"time"

	"meatdelivery/internal/core/domain/model/courier"
)

type UpdateCourierAvailabilityCommandHandler struct {
	uowFactory CourierUoWFactory
}

func NewUpdateCourierAvailabilityCommandHandler(uowFactory CourierUoWFactory) UpdateCourierAvailabilityCommandHandler {
	return UpdateCourierAvailabilityCommandHandler{uowFactory: uowFactory}
}

func (h UpdateCourierAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCourierAvailabilityCommand,
) (*courier.Courier, error) {
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

	if err = c.SetAvailability(cmd.Availability(), time.Now()); err != nil {
		return nil, err
	}

	if err = uow.CourierRepository().Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
