package kernel

import (
	"fmt"

	"bakery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const moneyScale = 2

// maxMoney bounds amounts to what fits a numeric(10,2) column.
var maxMoney = decimal.RequireFromString("99999999.99")

// Money is a non-negative amount in reais, kept at two decimal places.
//
// The zero value is a valid amount of 0.00, so Money does not carry a
// constructor guard. Arithmetic never mutates the receiver.
//
// Example:
//
//	price, err := kernel.NewMoney(decimal.RequireFromString("8.00"))
//	subtotal := price.Mul(3) // 24.00
type Money struct {
	amount decimal.Decimal
}

// NewMoney rounds d to cents and rejects negative or oversized amounts.
func NewMoney(d decimal.Decimal) (Money, error) {
	d = d.Round(moneyScale)
	if d.IsNegative() || d.GreaterThan(maxMoney) {
		return Money{}, errs.NewValueIsOutOfRangeError("money", d.StringFixed(moneyScale), "0.00", maxMoney.StringFixed(moneyScale))
	}
	return Money{amount: d}, nil
}

// MoneyFromString parses a decimal string such as "12.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%q is not a decimal amount", s))
	}
	return NewMoney(d)
}

// MoneyFromFloat converts a JSON number. Use it only at the transport edge.
func MoneyFromFloat(f float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(f))
}

// ZeroMoney returns 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mul returns m multiplied by a quantity.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))).Round(moneyScale)}
}

// Discount returns m reduced by percent (0..100), i.e. m - m*percent/100.
func (m Money) Discount(percent int) Money {
	off := m.amount.Mul(decimal.NewFromInt(int64(percent))).Div(decimal.NewFromInt(100))
	return Money{amount: m.amount.Sub(off).Round(moneyScale)}
}

// Decimal exposes the amount for persistence.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 is used by JSON responses and spreadsheets.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

// IsZero reports whether the amount is 0.00.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares amounts, ignoring trailing zeros.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly two decimals, e.g. "18.00".
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
