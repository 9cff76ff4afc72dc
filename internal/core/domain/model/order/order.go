package order

import (
	"errors"
	"slices"
	"strings"
	"time"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/errs"
	"meatdelivery/internal/pkg/guard"
)

// EstimatedDeliveryWindow is added to the acceptance time to estimate delivery.
const EstimatedDeliveryWindow = 45 * time.Minute

const (
	notePlaced          = "Order placed"
	noteAssigned        = "Order assigned to courier"
	noteAutoOutForDel   = "Auto-transitioned to out-for-delivery"
	noteStartDelivery   = "Started delivery"
	noteDelivered       = "Delivered successfully"
	noteCancelledByUser = "Cancelled by user"
)

var (
	ErrOrderIsNotConstructed = errors.New("order must be created via NewOrder or RestoreOrder")
	ErrOrderAlreadyAssigned  = errs.NewConflictError("order is already assigned")
	ErrOrderNotPending       = errs.NewConflictError("order is not pending")
	ErrOrderNotAssigned      = errs.NewConflictError("order has no assigned courier")
	ErrOrderIsFinal          = errs.NewConflictError("order is already delivered or cancelled")
	ErrOrderChanged          = errs.NewConflictError("order was changed by another request")
	ErrNotAssignedCourier    = errs.NewForbiddenError("order is assigned to another courier")
)

// CouponRef identifies the coupon redeemed by the order.
type CouponRef struct {
	CouponID kernel.UUID
	Code     string
}

// Draft carries everything checkout copies from the cart into a new order.
type Draft struct {
	Number              string
	CustomerID          kernel.UUID
	Items               []Item
	Address             DeliveryAddress
	Contact             Contact
	Pricing             Pricing
	PaymentMethod       PaymentMethod
	Coupon              *CouponRef
	SpecialInstructions string
}

// DeliveryInfo is the courier side of an order.
type DeliveryInfo struct {
	AssignedTo         *kernel.UUID
	EstimatedTime      *time.Time
	ActualDeliveryTime *time.Time
	Notes              string
}

// Order is an aggregate root. It is never deleted; it only changes status.
type Order struct {
	id                  kernel.UUID
	number              string
	customerID          kernel.UUID
	items               []Item
	address             DeliveryAddress
	contact             Contact
	pricing             Pricing
	coupon              *CouponRef
	specialInstructions string
	status              Status
	payment             PaymentInfo
	delivery            DeliveryInfo
	history             StatusHistory
	createdAt           time.Time
	guard               guard.ConstructorGuard
}

// NewOrder creates a pending order. The first history entry records the
// customer placing it.
//
// Validation errors of all fields are joined. Items must be non-empty and
// their subtotals must add up to Pricing.Subtotal.
func NewOrder(id kernel.UUID, d Draft, now time.Time) (*Order, error) {
	o := &Order{
		guard:     guard.NewConstructorGuard(),
		status:    Pending,
		createdAt: now,
	}
	if err := o.setDraft(id, d); err != nil {
		return nil, err
	}
	o.payment = PaymentInfo{Method: d.PaymentMethod, Status: PaymentPending}

	customer := d.CustomerID
	if err := o.history.AppendTransition(StatusChange{
		Status:    Pending,
		Timestamp: now,
		UpdatedBy: &customer,
		Notes:     notePlaced,
	}); err != nil {
		return nil, err
	}
	return o, nil
}

// RestoreOrder rebuilds an order from storage. The history is replayed and
// its last entry must match status.
func RestoreOrder(
	id kernel.UUID,
	d Draft,
	status Status,
	payment PaymentInfo,
	delivery DeliveryInfo,
	history []StatusChange,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard(), createdAt: createdAt}
	if err := o.setDraft(id, d); err != nil {
		return nil, err
	}
	if err := errors.Join(status.Validate(), payment.Method.Validate(), payment.Status.Validate()); err != nil {
		return nil, err
	}
	h, err := RestoreStatusHistory(history)
	if err != nil {
		return nil, err
	}
	if h.Current() != status {
		return nil, errs.NewValueIsInvalidError("status does not match status history")
	}
	if status != Pending && status != Cancelled && delivery.AssignedTo == nil {
		return nil, errs.NewValueIsInvalidError("assigned courier is required once confirmed")
	}
	o.status = status
	o.payment = payment
	o.delivery = delivery
	o.history = h
	return o, nil
}

func (o *Order) setDraft(id kernel.UUID, d Draft) error {
	var list []error
	list = append(list, id.Validate(), validateOrderNumber(d.Number), d.CustomerID.Validate(),
		d.Address.Validate(), d.PaymentMethod.Validate(), d.Pricing.Validate())
	if strings.TrimSpace(d.Contact.Phone) == "" {
		list = append(list, errs.NewValueIsRequiredError("contactInfo.phone"))
	}
	if len(d.Items) == 0 {
		list = append(list, errs.NewValueIsRequiredError("items"))
	}
	sum := kernel.Zero
	for _, it := range d.Items {
		if it.Quantity < 1 {
			list = append(list, errs.NewValueIsOutOfRangeError("items.quantity", it.Quantity, 1, "unbounded"))
		}
		sum = sum.Add(it.Subtotal)
	}
	if len(d.Items) > 0 && !sum.Equal(d.Pricing.Subtotal) {
		list = append(list, errs.NewValueIsInvalidError("pricing.subtotal does not match items"))
	}
	if d.Coupon != nil {
		list = append(list, d.Coupon.CouponID.Validate())
	}
	if err := errors.Join(list...); err != nil {
		return err
	}

	o.id = id
	o.number = d.Number
	o.customerID = d.CustomerID
	o.items = slices.Clone(d.Items)
	o.address = d.Address
	o.contact = d.Contact
	o.pricing = d.Pricing
	if d.Coupon != nil {
		ref := *d.Coupon
		o.coupon = &ref
	}
	o.specialInstructions = strings.TrimSpace(d.SpecialInstructions)
	return nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID             { return o.id }
func (o *Order) Number() string              { return o.number }
func (o *Order) CustomerID() kernel.UUID     { return o.customerID }
func (o *Order) Items() []Item               { return slices.Clone(o.items) }
func (o *Order) Address() DeliveryAddress    { return o.address }
func (o *Order) Contact() Contact            { return o.contact }
func (o *Order) Pricing() Pricing            { return o.pricing }
func (o *Order) SpecialInstructions() string { return o.specialInstructions }
func (o *Order) Status() Status              { return o.status }
func (o *Order) Payment() PaymentInfo        { return o.payment }
func (o *Order) CreatedAt() time.Time        { return o.createdAt }
func (o *Order) History() StatusHistory      { return StatusHistory{entries: o.history.Entries()} }

// Coupon returns the redeemed coupon reference, or nil.
func (o *Order) Coupon() *CouponRef {
	if o.coupon == nil {
		return nil
	}
	ref := *o.coupon
	return &ref
}

// Delivery returns a copy of the courier-side details.
func (o *Order) Delivery() DeliveryInfo {
	d := o.delivery
	if d.AssignedTo != nil {
		v := *d.AssignedTo
		d.AssignedTo = &v
	}
	return d
}

// AssignedTo returns the assigned courier, or nil.
func (o *Order) AssignedTo() *kernel.UUID {
	return o.Delivery().AssignedTo
}

// IsAssignedTo reports whether courierID holds the order.
func (o *Order) IsAssignedTo(courierID kernel.UUID) bool {
	return o.delivery.AssignedTo != nil && o.delivery.AssignedTo.IsEqual(courierID)
}

// IsOwnedBy reports whether the customer placed the order.
func (o *Order) IsOwnedBy(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

func (o *Order) transition(to Status, by kernel.UUID, notes string, now time.Time) error {
	updatedBy := by
	if err := o.history.AppendTransition(StatusChange{
		Status:    to,
		Timestamp: now,
		UpdatedBy: &updatedBy,
		Notes:     notes,
	}); err != nil {
		return err
	}
	o.status = to
	return nil
}

// Confirm assigns the order to a courier and moves it from pending to
// confirmed, estimating delivery EstimatedDeliveryWindow from now. updatedBy is
// the courier accepting or the admin assigning.
func (o *Order) Confirm(courierID, updatedBy kernel.UUID, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.delivery.AssignedTo != nil {
		return ErrOrderAlreadyAssigned
	}
	if o.status != Pending {
		return ErrOrderNotPending
	}
	if err := o.transition(Confirmed, updatedBy, noteAssigned, now); err != nil {
		return err
	}
	eta := now.Add(EstimatedDeliveryWindow)
	o.delivery.AssignedTo = &courierID
	o.delivery.EstimatedTime = &eta
	return nil
}

// StartPreparing moves a confirmed order to preparing.
func (o *Order) StartPreparing(updatedBy kernel.UUID, notes string, now time.Time) error {
	if o.status != Confirmed {
		return transitionError(o.status, Preparing)
	}
	return o.transition(Preparing, updatedBy, notes, now)
}

// MarkOutForDelivery moves a confirmed or preparing order to out-for-delivery.
// courierID must be the assigned courier; updatedBy may be that courier or an admin.
func (o *Order) MarkOutForDelivery(courierID, updatedBy kernel.UUID, notes string, now time.Time) error {
	if o.status != Confirmed && o.status != Preparing {
		return transitionError(o.status, OutForDelivery)
	}
	if !o.IsAssignedTo(courierID) {
		return ErrNotAssignedCourier
	}
	if notes == "" {
		notes = noteStartDelivery
	}
	return o.transition(OutForDelivery, updatedBy, notes, now)
}

// MarkDelivered completes the order on behalf of the assigned courier.
//
// A confirmed or preparing order first gets an out-for-delivery entry, so the
// history never skips a state. Delivery time and payment are settled at now.
func (o *Order) MarkDelivered(courierID kernel.UUID, notes string, now time.Time) error {
	if !o.status.IsActive() {
		return transitionError(o.status, Delivered)
	}
	if !o.IsAssignedTo(courierID) {
		return ErrNotAssignedCourier
	}
	if o.status != OutForDelivery {
		if err := o.transition(OutForDelivery, courierID, noteAutoOutForDel, now); err != nil {
			return err
		}
	}
	if notes == "" {
		notes = noteDelivered
	}
	if err := o.transition(Delivered, courierID, notes, now); err != nil {
		return err
	}
	deliveredAt := now
	paidAt := now
	o.delivery.ActualDeliveryTime = &deliveredAt
	o.payment.Status = PaymentCompleted
	o.payment.PaidAt = &paidAt
	return nil
}

// Cancel moves a non-terminal order to cancelled. Authorisation of the actor
// is the caller's concern; restoring stock is a separate compensating step.
func (o *Order) Cancel(updatedBy kernel.UUID, reason string, now time.Time) error {
	if o.status.IsTerminal() {
		return ErrOrderIsFinal
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = noteCancelledByUser
	}
	if err := o.transition(Cancelled, updatedBy, reason, now); err != nil {
		return err
	}
	o.delivery.Notes = reason
	return nil
}

// OutForDeliveryAt is the time the order first left for delivery.
func (o *Order) OutForDeliveryAt() (time.Time, bool) {
	e, ok := o.history.FirstOf(OutForDelivery)
	return e.Timestamp, ok
}

// DeliveryDuration is the time from leaving for delivery to arrival.
func (o *Order) DeliveryDuration() (time.Duration, bool) {
	if o.status != Delivered || o.delivery.ActualDeliveryTime == nil {
		return 0, false
	}
	left, ok := o.OutForDeliveryAt()
	if !ok {
		return 0, false
	}
	return o.delivery.ActualDeliveryTime.Sub(left), true
}
