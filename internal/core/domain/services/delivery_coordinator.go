package services

import (
	"time"

	"meatdelivery/internal/core/domain/model/courier"
	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/order"
	"meatdelivery/internal/pkg/errs"
)

// RecentDeliveriesWindow is how many delivered orders feed the average delivery time.
const RecentDeliveriesWindow = 10

var ErrCourierHasActiveDelivery = errs.NewConflictError("courier already has an active delivery")

// DeliveryCoordinator applies courier-side rules around order transitions.
type DeliveryCoordinator struct{}

// Accept assigns a pending order to a courier.
//
// Parameters:
//   - o: the order, pending and unassigned
//   - c: the courier, approved and active
//   - active: the courier's order in confirmed, preparing or out-for-delivery, or nil
//   - assignedBy: the courier accepting or the admin assigning
//
// On success the order is confirmed with an estimated delivery time and the
// courier is busy. Storage must still guard the write with a conditional
// update on "pending and unassigned".
func (DeliveryCoordinator) Accept(
	o *order.Order,
	c *courier.Courier,
	active *order.Order,
	assignedBy kernel.UUID,
	now time.Time,
) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if o.AssignedTo() != nil {
		return order.ErrOrderAlreadyAssigned
	}
	if o.Status() != order.Pending {
		return order.ErrOrderNotPending
	}
	if err := c.CanAcceptOrders(); err != nil {
		return err
	}
	if active != nil && !active.IsEqual(o) {
		return ErrCourierHasActiveDelivery
	}
	if err := o.Confirm(c.ID(), assignedBy, now); err != nil {
		return err
	}
	c.MarkBusy(now)
	return nil
}

// Deliver completes the courier's order and updates the courier's statistics.
//
// previous are the courier's earlier delivered orders, newest first. Together
// with o they give the RecentDeliveriesWindow durations the average is taken over.
func (DeliveryCoordinator) Deliver(
	o *order.Order,
	c *courier.Courier,
	previous []*order.Order,
	notes string,
	now time.Time,
) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if err := o.MarkDelivered(c.ID(), notes, now); err != nil {
		return err
	}

	durations := make([]time.Duration, 0, RecentDeliveriesWindow)
	for _, candidate := range append([]*order.Order{o}, previous...) {
		if len(durations) == RecentDeliveriesWindow {
			break
		}
		if candidate != o && candidate.IsEqual(o) {
			continue
		}
		if d, ok := candidate.DeliveryDuration(); ok {
			durations = append(durations, d)
		}
	}
	c.RecordDelivery(durations, now)
	return nil
}

// ReleaseCourier frees the courier of a cancelled order.
func (DeliveryCoordinator) ReleaseCourier(o *order.Order, c *courier.Courier, now time.Time) {
	if c == nil || o.Status() != order.Cancelled || !o.IsAssignedTo(c.ID()) {
		return
	}
	c.Release(now)
}
