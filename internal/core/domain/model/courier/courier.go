package courier

import (
	"errors"
	"math"
	"strings"
	"time"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/errs"
	"meatdelivery/internal/pkg/guard"
)

var (
	ErrCourierIsNotConstructed = errors.New("courier must be created via NewCourier or RestoreCourier")
	ErrCourierNotApproved      = errs.NewForbiddenError("courier is not approved")
	ErrCourierNotActive        = errs.NewForbiddenError("courier is not active")
	ErrBusyIsManaged           = errs.NewValueIsInvalidError("availability busy is set by accepting an order")
	ErrCourierIsBusy           = errs.NewConflictError("courier has an active delivery")
)

// Stats are the rolling delivery statistics of a courier.
// AverageDeliveryTime is in whole minutes.
type Stats struct {
	TotalDeliveries     int
	CompletedDeliveries int
	AverageDeliveryTime int
}

// Courier is an aggregate root.
type Courier struct {
	id           kernel.UUID
	name         string
	phone        string
	status       Status
	availability Availability
	isApproved   bool
	isVerified   bool
	stats        Stats
	lastActive   *time.Time
	guard        guard.ConstructorGuard
}

// NewCourier onboards a courier: active, offline and awaiting approval.
//
// Parameters:
//   - id: courier identifier, shared with the identity service
//   - name: display name, required
//   - phone: contact number, required
//
// Example:
//
//	c, err := courier.NewCourier(kernel.NewUUID(), "Ravi", "+919800000000")
//	c.Approve()
func NewCourier(id kernel.UUID, name, phone string) (*Courier, error) {
	c := &Courier{
		status:       Active,
		availability: Offline,
		guard:        guard.NewConstructorGuard(),
	}
	if err := errors.Join(c.setID(id), c.setName(name), c.setPhone(phone)); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreCourier rebuilds a courier from storage.
func RestoreCourier(
	id kernel.UUID,
	name, phone string,
	status Status,
	availability Availability,
	isApproved, isVerified bool,
	stats Stats,
	lastActive *time.Time,
) (*Courier, error) {
	c, err := NewCourier(id, name, phone)
	if err != nil {
		return nil, err
	}
	if err = errors.Join(status.Validate(), availability.Validate(), validateStats(stats)); err != nil {
		return nil, err
	}
	c.status = status
	c.availability = availability
	c.isApproved = isApproved
	c.isVerified = isVerified
	c.stats = stats
	c.lastActive = lastActive
	return c, nil
}

func validateStats(s Stats) error {
	var list []error
	if s.TotalDeliveries < 0 {
		list = append(list, errs.NewValueIsOutOfRangeError("totalDeliveries", s.TotalDeliveries, 0, "unbounded"))
	}
	if s.CompletedDeliveries < 0 || s.CompletedDeliveries > s.TotalDeliveries {
		list = append(list, errs.NewValueIsOutOfRangeError("completedDeliveries",
			s.CompletedDeliveries, 0, s.TotalDeliveries))
	}
	if s.AverageDeliveryTime < 0 {
		list = append(list, errs.NewValueIsOutOfRangeError("averageDeliveryTime", s.AverageDeliveryTime, 0, "unbounded"))
	}
	return errors.Join(list...)
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Courier) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Courier) ID() kernel.UUID {
	return c.id
}

func (c *Courier) Name() string {
	return c.name
}

func (c *Courier) Phone() string {
	return c.phone
}

func (c *Courier) Status() Status {
	return c.status
}

func (c *Courier) Availability() Availability {
	return c.availability
}

func (c *Courier) IsApproved() bool {
	return c.isApproved
}

func (c *Courier) IsVerified() bool {
	return c.isVerified
}

func (c *Courier) Stats() Stats {
	return c.stats
}

func (c *Courier) LastActive() *time.Time {
	if c.lastActive == nil {
		return nil
	}
	t := *c.lastActive
	return &t
}

// Approve lets the courier accept orders.
func (c *Courier) Approve() {
	c.isApproved = true
}

// Verify marks the courier's documents as checked.
func (c *Courier) Verify() {
	c.isVerified = true
}

// SetStatus changes the employment status.
func (c *Courier) SetStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.status = s
	return nil
}

// CanAcceptOrders reports why the courier may not take orders, if so.
func (c *Courier) CanAcceptOrders() error {
	if !c.isApproved {
		return ErrCourierNotApproved
	}
	if c.status != Active {
		return ErrCourierNotActive
	}
	return nil
}

// MarkBusy is called when the courier takes an order.
func (c *Courier) MarkBusy(now time.Time) {
	c.availability = Busy
	c.seen(now)
}

// Release makes a busy courier available again without counting a delivery,
// e.g. when their order is cancelled.
func (c *Courier) Release(now time.Time) {
	if c.availability == Busy {
		c.availability = Available
	}
	c.seen(now)
}

// SetAvailability switches between available and offline. A busy courier
// stays busy until their delivery is recorded or released.
func (c *Courier) SetAvailability(a Availability, now time.Time) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a == Busy {
		return ErrBusyIsManaged
	}
	if c.availability == Busy {
		return ErrCourierIsBusy
	}
	c.availability = a
	c.seen(now)
	return nil
}

// RecordDelivery counts a completed delivery and frees the courier.
//
// recent are the delivery durations of the courier's most recent delivered
// orders, newest first, including the one just completed. The average is taken
// over them in minutes and rounded to the nearest minute; with no durations the
// previous average is kept.
func (c *Courier) RecordDelivery(recent []time.Duration, now time.Time) {
	c.stats.TotalDeliveries++
	c.stats.CompletedDeliveries++
	if len(recent) > 0 {
		var sum time.Duration
		for _, d := range recent {
			sum += d
		}
		avg := sum.Minutes() / float64(len(recent))
		c.stats.AverageDeliveryTime = int(math.Round(avg))
	}
	c.availability = Available
	c.seen(now)
}

// CompletionRate is completed / total × 100, rounded to two decimals.
// A courier without deliveries has a rate of 100.
func (c *Courier) CompletionRate() float64 {
	if c.stats.TotalDeliveries == 0 {
		return 100
	}
	rate := float64(c.stats.CompletedDeliveries) / float64(c.stats.TotalDeliveries) * 100
	return math.Round(rate*100) / 100
}

func (c *Courier) seen(now time.Time) {
	t := now
	c.lastActive = &t
}
