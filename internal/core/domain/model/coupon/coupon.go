package coupon

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/errs"
	"meatdelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	MinCodeLength         = 3
	MaxCodeLength         = 20
	DefaultUserUsageLimit = 1
)

var ErrCouponIsNotConstructed = errors.New("coupon must be created via NewCoupon or RestoreCoupon")

// Terms are the admin-defined rules of a coupon.
//
// ValidFrom and ValidTo bound an inclusive window. An empty ApplicableCategories
// means every category. MaximumDiscount and UsageLimit are optional caps; a
// zero UserUsageLimit defaults to DefaultUserUsageLimit.
type Terms struct {
	Code                 string
	Description          string
	Type                 DiscountType
	Value                decimal.Decimal
	MinimumOrderValue    kernel.Money
	MaximumDiscount      *kernel.Money
	UsageLimit           *int
	UserUsageLimit       int
	ValidFrom            time.Time
	ValidTo              time.Time
	ApplicableCategories []kernel.Category
	ExcludedProducts     []kernel.UUID
	UserEligibility      Eligibility
}

// Coupon is an aggregate root. Usage counters change only through ApplyUsage.
type Coupon struct {
	id         kernel.UUID
	terms      Terms
	isActive   bool
	usageCount int
	usedBy     []UserUsage
	guard      guard.ConstructorGuard
}

// NormalizeCode uppercases and trims a code the way it is stored.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NewCoupon creates an active coupon with no redemptions.
//
// Validation errors for all fields are joined:
//   - code: 3 to 20 characters without whitespace, stored uppercase
//   - value: positive, at most 100 for Percentage
//   - window: ValidTo after ValidFrom
//   - caps: UsageLimit and UserUsageLimit at least 1 when set
//
// Example:
//
//	c, err := coupon.NewCoupon(kernel.NewUUID(), coupon.Terms{
//	    Code: "welcome10", Type: coupon.Percentage, Value: decimal.NewFromInt(10),
//	    MinimumOrderValue: kernel.Rupees(500), MaximumDiscount: &maxDiscount,
//	    ValidFrom: from, ValidTo: to,
//	})
//	// c.Code() == "WELCOME10"
func NewCoupon(id kernel.UUID, terms Terms) (*Coupon, error) {
	terms.Code = NormalizeCode(terms.Code)
	terms.Description = strings.TrimSpace(terms.Description)
	if terms.UserUsageLimit == 0 {
		terms.UserUsageLimit = DefaultUserUsageLimit
	}
	if terms.UserEligibility == "" {
		terms.UserEligibility = EligibilityAll
	}

	if err := errors.Join(id.Validate(), validateTerms(terms)); err != nil {
		return nil, err
	}

	return &Coupon{
		id:       id,
		terms:    cloneTerms(terms),
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreCoupon rebuilds a coupon from storage, including its redemption state.
func RestoreCoupon(id kernel.UUID, terms Terms, isActive bool, usageCount int, usedBy []UserUsage) (*Coupon, error) {
	c, err := NewCoupon(id, terms)
	if err != nil {
		return nil, err
	}
	if usageCount < 0 {
		return nil, errs.NewValueIsOutOfRangeError("usageCount", usageCount, 0, "usageLimit")
	}
	if c.terms.UsageLimit != nil && usageCount > *c.terms.UsageLimit {
		return nil, errs.NewValueIsOutOfRangeError("usageCount", usageCount, 0, *c.terms.UsageLimit)
	}
	c.isActive = isActive
	c.usageCount = usageCount
	c.usedBy = slices.Clone(usedBy)
	return c, nil
}

func validateTerms(t Terms) error {
	var list []error

	if n := utf8.RuneCountInString(t.Code); n < MinCodeLength || n > MaxCodeLength {
		list = append(list, errs.NewValueIsOutOfRangeError("code.length", n, MinCodeLength, MaxCodeLength))
	} else if strings.ContainsFunc(t.Code, func(r rune) bool { return r == ' ' || r == '\t' || r == '\n' }) {
		list = append(list, errs.NewValueIsInvalidErrorWithCause("code", errors.New("must not contain whitespace")))
	}

	if err := t.Type.Validate(); err != nil {
		list = append(list, err)
	}
	if !t.Value.IsPositive() {
		list = append(list, errs.NewValueIsOutOfRangeError("value", t.Value.String(), "0 (exclusive)", "unbounded"))
	}
	if t.Type == Percentage && t.Value.GreaterThan(decimal.NewFromInt(100)) {
		list = append(list, errs.NewValueIsOutOfRangeError("value", t.Value.String(), 0, 100))
	}

	if t.ValidFrom.IsZero() {
		list = append(list, errs.NewValueIsRequiredError("validFrom"))
	}
	if t.ValidTo.IsZero() {
		list = append(list, errs.NewValueIsRequiredError("validTo"))
	}
	if !t.ValidFrom.IsZero() && !t.ValidTo.IsZero() && !t.ValidTo.After(t.ValidFrom) {
		list = append(list, errs.NewValueIsInvalidErrorWithCause("validTo",
			fmt.Errorf("%s is not after validFrom %s", t.ValidTo.Format(time.RFC3339), t.ValidFrom.Format(time.RFC3339))))
	}

	if t.UsageLimit != nil && *t.UsageLimit < 1 {
		list = append(list, errs.NewValueIsOutOfRangeError("usageLimit", *t.UsageLimit, 1, "unbounded"))
	}
	if t.UserUsageLimit < 1 {
		list = append(list, errs.NewValueIsOutOfRangeError("userUsageLimit", t.UserUsageLimit, 1, "unbounded"))
	}
	for _, c := range t.ApplicableCategories {
		if err := c.Validate(); err != nil {
			list = append(list, err)
		}
	}
	for _, id := range t.ExcludedProducts {
		if err := id.Validate(); err != nil {
			list = append(list, errs.NewValueIsInvalidErrorWithCause("excludedProducts", err))
		}
	}
	if err := t.UserEligibility.Validate(); err != nil {
		list = append(list, err)
	}

	return errors.Join(list...)
}

func cloneTerms(t Terms) Terms {
	t.ApplicableCategories = slices.Clone(t.ApplicableCategories)
	t.ExcludedProducts = slices.Clone(t.ExcludedProducts)
	if t.MaximumDiscount != nil {
		v := *t.MaximumDiscount
		t.MaximumDiscount = &v
	}
	if t.UsageLimit != nil {
		v := *t.UsageLimit
		t.UsageLimit = &v
	}
	return t
}

func (c *Coupon) Validate() error {
	if c == nil {
		return ErrCouponIsNotConstructed
	}
	return c.guard.Validate(ErrCouponIsNotConstructed)
}

func (c *Coupon) ID() kernel.UUID {
	return c.id
}

func (c *Coupon) Code() string {
	return c.terms.Code
}

// Terms returns a copy of the coupon rules.
func (c *Coupon) Terms() Terms {
	return cloneTerms(c.terms)
}

func (c *Coupon) IsActive() bool {
	return c.isActive
}

func (c *Coupon) UsageCount() int {
	return c.usageCount
}

// UsedBy returns a copy of the per-customer redemption records.
func (c *Coupon) UsedBy() []UserUsage {
	return slices.Clone(c.usedBy)
}

// Deactivate soft-deletes the coupon. Coupons are never removed from storage.
func (c *Coupon) Deactivate() {
	c.isActive = false
}

// DisplayText is the short label shown to customers, e.g. "10% OFF" or "₹100 OFF".
func (c *Coupon) DisplayText() string {
	if c.terms.Type == Percentage {
		return fmt.Sprintf("%s%% OFF", c.terms.Value.String())
	}
	return fmt.Sprintf("₹%s OFF", c.terms.Value.String())
}
