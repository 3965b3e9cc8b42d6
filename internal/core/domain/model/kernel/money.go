package kernel

import (
	"fmt"

	"dashboard/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative amount in the store currency, kept with two
// decimal places. Prices, assigned prices and payments all use it.
type Money struct {
	amount decimal.Decimal
}

// Zero is the empty amount.
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney validates that amount is not negative and rounds it to cents.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), 0, "unbounded")
	}
	return Money{amount: amount.Round(2)}, nil
}

// MoneyFromFloat converts a JSON number from the remote API.
func MoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// MustMoney parses a literal such as "12.50" and panics on failure.
func MustMoney(amount string) Money {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		panic(err)
	}
	m, err := NewMoney(d)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m - other, clamped at zero.
func (m Money) Sub(other Money) Money {
	diff := m.amount.Sub(other.amount)
	if diff.IsNegative() {
		return Zero()
	}
	return Money{amount: diff}
}

// Mul multiplies by a quantity.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Float64 is the representation used in GraphQL arguments.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Sum adds up a list of amounts.
func Sum(amounts ...Money) Money {
	total := Zero()
	for _, amount := range amounts {
		total = total.Add(amount)
	}
	return total
}

// Format renders the amount with a currency prefix, e.g. "RM 12.50".
func (m Money) Format(currency string) string {
	return fmt.Sprintf("%s %s", currency, m.String())
}
