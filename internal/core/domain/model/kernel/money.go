package kernel

import (
	"fmt"

	"meatdelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places every amount is rounded to.
const MoneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// Money is a non-negative amount in rupees.
//
// Rounding is half-up (away from zero) to MoneyPlaces, applied by Round.
// Arithmetic keeps full precision until Round is called, so a discount is
// computed exactly and rounded once.
//
// The zero value is a valid amount of 0.
type Money struct {
	amount decimal.Decimal
}

// Zero is an amount of 0.
var Zero = Money{}

// NewMoney wraps a decimal amount. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), 0, "unbounded")
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal string such as "499.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// MoneyFromFloat converts a float amount. Intended for request payloads.
func MoneyFromFloat(f float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(f))
}

// Rupees builds an amount from a whole number of rupees.
func Rupees(n int64) Money {
	if n < 0 {
		n = 0
	}
	return Money{amount: decimal.NewFromInt(n)}
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub subtracts other and floors the result at zero.
func (m Money) Sub(other Money) Money {
	diff := m.amount.Sub(other.amount)
	if diff.IsNegative() {
		return Zero
	}
	return Money{amount: diff}
}

// Times multiplies the amount by a quantity.
func (m Money) Times(quantity int) Money {
	if quantity <= 0 {
		return Zero
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Percent returns pct percent of the amount, e.g. Rupees(600).Percent(10) is 60.
func (m Money) Percent(pct decimal.Decimal) Money {
	if pct.IsNegative() {
		return Zero
	}
	return Money{amount: m.amount.Mul(pct).Div(hundred)}
}

// Min returns the smaller of the two amounts.
func (m Money) Min(other Money) Money {
	if other.amount.LessThan(m.amount) {
		return other
	}
	return m
}

// Round rounds half-up to two decimal places.
func (m Money) Round() Money {
	return Money{amount: m.amount.Round(MoneyPlaces)}
}

func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String renders the amount with two decimals, e.g. "540.00".
func (m Money) String() string {
	return m.amount.StringFixed(MoneyPlaces)
}

// Format renders the amount for display, e.g. "₹540.00".
func (m Money) Format() string {
	return fmt.Sprintf("₹%s", m.String())
}

// MarshalJSON encodes the amount as a JSON number with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts both numbers and quoted decimal strings.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	parsed, err := NewMoney(d)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
