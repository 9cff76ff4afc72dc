package commands

import (
	"context"
)

type DeactivateCouponCommandHandler struct {
	uowFactory CouponUoWFactory
}

func NewDeactivateCouponCommandHandler(uowFactory CouponUoWFactory) DeactivateCouponCommandHandler {
	return DeactivateCouponCommandHandler{uowFactory: uowFactory}
}

func (h DeactivateCouponCommandHandler) Handle(ctx context.Context, cmd DeactivateCouponCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cp, err := uow.CouponRepository().Get(ctx, cmd.CouponID())
	if err != nil {
		return err
	}

	cp.Deactivate()

	if err = uow.CouponRepository().Update(ctx, cp); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
