package commands

import (
	"context"
	"errors"
	"time"

	"meatdelivery/internal/core/domain/model/courier"
	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/order"
	"meatdelivery/internal/core/domain/services"
	"meatdelivery/internal/pkg/errs"
)

func validateOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	return nil
}

// acceptOrder confirms a pending order for a courier. The order write is
// conditional on the stored row still being pending and unassigned, so of two
// concurrent acceptances exactly one commits.
func acceptOrder(
	ctx context.Context,
	uow DeliveryUoW,
	orderID, courierID, assignedBy kernel.UUID,
	now time.Time,
) (*order.Order, error) {
	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	c, err := courierRepo.Get(ctx, courierID)
	if err != nil {
		return nil, err
	}

	active, err := orderRepo.FindActiveByCourier(ctx, courierID)
	if err != nil {
		return nil, err
	}

	if err = (services.DeliveryCoordinator{}).Accept(o, c, active, assignedBy, now); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateIfUnassigned(ctx, o); err != nil {
		return nil, err
	}

	if err = courierRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	return o, nil
}

// cancelOrder cancels o and runs the compensations: every line's stock goes
// back to the catalog and an assigned courier is released.
func cancelOrder(ctx context.Context, uow UoW, o *order.Order, by kernel.UUID, reason string, now time.Time) error {
	from := o.Status()
	if err := o.Cancel(by, reason, now); err != nil {
		return err
	}

	for _, it := range o.Items() {
		if err := uow.ProductRepository().ReleaseStock(ctx, it.ProductID, it.Quantity); err != nil {
			return err
		}
	}

	if assigned := o.AssignedTo(); assigned != nil {
		c, err := uow.CourierRepository().Get(ctx, *assigned)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		if c != nil {
			if err = releaseCourier(ctx, uow, o, c, now); err != nil {
				return err
			}
		}
	}

	return uow.OrderRepository().Update(ctx, o, from)
}

func releaseCourier(ctx context.Context, uow UoW, o *order.Order, c *courier.Courier, now time.Time) error {
	services.DeliveryCoordinator{}.ReleaseCourier(o, c, now)
	return uow.CourierRepository().Update(ctx, c)
}
