package commands

import (
	"context"

	"meatdelivery/internal/core/domain/model/coupon"
)

type CreateCouponCommandHandler struct {
	uowFactory CouponUoWFactory
}

func NewCreateCouponCommandHandler(uowFactory CouponUoWFactory) CreateCouponCommandHandler {
	return CreateCouponCommandHandler{uowFactory: uowFactory}
}

// Handle stores the coupon. A code already in use is a conflict reported by the repository.
func (h CreateCouponCommandHandler) Handle(ctx context.Context, cmd CreateCouponCommand) (*coupon.Coupon, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	cp, err := coupon.NewCoupon(cmd.CouponID(), cmd.Terms())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CouponRepository().Add(ctx, cp); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return cp, nil
}
