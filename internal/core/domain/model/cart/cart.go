package cart

import (
	"errors"
	"slices"
	"time"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/product"
	"meatdelivery/internal/pkg/errs"
	"meatdelivery/internal/pkg/guard"
)

var (
	ErrCartIsNotConstructed = errors.New("cart must be created via NewCart or RestoreCart")
	ErrCartIsEmpty          = errs.NewConflictError("cart is empty")
	ErrNoCouponApplied      = errs.NewConflictError("no coupon applied")
	ErrCartChanged          = errs.NewConflictError("cart was changed by another request")
)

// AppliedCoupon is the coupon snapshot stored on the cart when it was applied.
type AppliedCoupon struct {
	CouponID  kernel.UUID
	Code      string
	Discount  kernel.Money
	AppliedAt time.Time
}

// Totals are derived from the lines and the applied coupon.
type Totals struct {
	TotalItems     int
	Subtotal       kernel.Money
	DiscountAmount kernel.Money
	FinalAmount    kernel.Money
}

// Cart is an aggregate root, unique per customer.
type Cart struct {
	id            kernel.UUID
	userID        kernel.UUID
	items         []Item
	appliedCoupon *AppliedCoupon
	totals        Totals
	updatedAt     time.Time
	version       int
	guard         guard.ConstructorGuard
}

// NewCart creates an empty cart for a customer.
func NewCart(id, userID kernel.UUID, now time.Time) (*Cart, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}
	c := &Cart{
		id:        id,
		userID:    userID,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}
	c.recalculate()
	return c, nil
}

// RestoreCart rebuilds a cart from storage and recomputes its totals.
// version is the stored revision the next save must still find.
func RestoreCart(
	id, userID kernel.UUID,
	items []Item,
	appliedCoupon *AppliedCoupon,
	updatedAt time.Time,
	version int,
) (*Cart, error) {
	c, err := NewCart(id, userID, updatedAt)
	if err != nil {
		return nil, err
	}
	c.version = version
	c.items = slices.Clone(items)
	if appliedCoupon != nil {
		snapshot := *appliedCoupon
		c.appliedCoupon = &snapshot
	}
	c.recalculate()
	return c, nil
}

func (c *Cart) recalculate() {
	t := Totals{Subtotal: kernel.Zero, DiscountAmount: kernel.Zero}
	for _, it := range c.items {
		t.TotalItems += it.quantity
		t.Subtotal = t.Subtotal.Add(it.Subtotal())
	}
	if c.appliedCoupon != nil {
		t.DiscountAmount = c.appliedCoupon.Discount
	}
	t.FinalAmount = t.Subtotal.Sub(t.DiscountAmount)
	c.totals = t
}

func (c *Cart) touch(now time.Time) {
	c.updatedAt = now
	c.recalculate()
}

func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

func (c *Cart) ID() kernel.UUID {
	return c.id
}

func (c *Cart) UserID() kernel.UUID {
	return c.userID
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []Item {
	return slices.Clone(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Totals() Totals {
	return c.totals
}

func (c *Cart) UpdatedAt() time.Time {
	return c.updatedAt
}

// Version is zero for a cart that was never stored.
func (c *Cart) Version() int {
	return c.version
}

// Stored moves the cart to the revision its last save wrote.
func (c *Cart) Stored() {
	c.version++
}

// AppliedCoupon returns a copy of the coupon snapshot, or nil.
func (c *Cart) AppliedCoupon() *AppliedCoupon {
	if c.appliedCoupon == nil {
		return nil
	}
	snapshot := *c.appliedCoupon
	return &snapshot
}

// Item finds a line by its id.
func (c *Cart) Item(itemID kernel.UUID) (Item, bool) {
	i := c.indexOf(itemID)
	if i < 0 {
		return Item{}, false
	}
	return c.items[i], true
}

func (c *Cart) indexOf(itemID kernel.UUID) int {
	return slices.IndexFunc(c.items, func(it Item) bool { return it.id.IsEqual(itemID) })
}

func (c *Cart) indexOfProduct(productID kernel.UUID) int {
	return slices.IndexFunc(c.items, func(it Item) bool { return it.productID.IsEqual(productID) })
}

// AddItem puts quantity units of a product into the cart.
//
// When the product already has a line its quantity grows and its priceAtTime
// is replaced by the product's current discounted price; it is never averaged.
// The product must be active and hold enough stock for the resulting quantity.
func (c *Cart) AddItem(p *product.Product, quantity int, now time.Time) error {
	if err := errors.Join(p.Validate(), validateQuantity(quantity)); err != nil {
		return err
	}

	if i := c.indexOfProduct(p.ID()); i >= 0 {
		total := c.items[i].quantity + quantity
		if err := p.CheckAvailable(total); err != nil {
			return err
		}
		c.items[i].quantity = total
		c.items[i].priceAtTime = p.DiscountedPrice(now)
		c.touch(now)
		return nil
	}

	if err := p.CheckAvailable(quantity); err != nil {
		return err
	}
	c.items = append(c.items, Item{
		id:          kernel.NewUUID(),
		productID:   p.ID(),
		quantity:    quantity,
		priceAtTime: p.DiscountedPrice(now),
		addedAt:     now,
	})
	c.touch(now)
	return nil
}

// UpdateItem sets the quantity of a line and refreshes its price snapshot.
// p must be the product of that line.
func (c *Cart) UpdateItem(itemID kernel.UUID, p *product.Product, quantity int, now time.Time) error {
	if err := errors.Join(p.Validate(), validateQuantity(quantity)); err != nil {
		return err
	}
	i := c.indexOf(itemID)
	if i < 0 {
		return errs.NewObjectNotFoundError("cart item", itemID)
	}
	if !c.items[i].productID.IsEqual(p.ID()) {
		return errs.NewValueIsInvalidError("product does not match cart item")
	}
	if err := p.CheckAvailable(quantity); err != nil {
		return err
	}
	c.items[i].quantity = quantity
	c.items[i].priceAtTime = p.DiscountedPrice(now)
	c.touch(now)
	return nil
}

// RemoveItem drops a line.
func (c *Cart) RemoveItem(itemID kernel.UUID, now time.Time) error {
	i := c.indexOf(itemID)
	if i < 0 {
		return errs.NewObjectNotFoundError("cart item", itemID)
	}
	c.items = slices.Delete(c.items, i, i+1)
	if len(c.items) == 0 {
		c.appliedCoupon = nil
	}
	c.touch(now)
	return nil
}

// Clear empties the cart and drops the coupon. The cart itself is kept.
func (c *Cart) Clear(now time.Time) {
	c.items = nil
	c.appliedCoupon = nil
	c.touch(now)
}

// ApplyCoupon stores a coupon snapshot. Eligibility and pricing are decided by
// the caller; the cart only refuses coupons while empty.
func (c *Cart) ApplyCoupon(applied AppliedCoupon) error {
	if c.IsEmpty() {
		return ErrCartIsEmpty
	}
	if err := applied.CouponID.Validate(); err != nil {
		return err
	}
	if applied.Code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	c.appliedCoupon = &applied
	c.touch(applied.AppliedAt)
	return nil
}

// RemoveCoupon clears the coupon snapshot.
func (c *Cart) RemoveCoupon(now time.Time) error {
	if c.appliedCoupon == nil {
		return ErrNoCouponApplied
	}
	c.appliedCoupon = nil
	c.touch(now)
	return nil
}
