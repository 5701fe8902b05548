// Package money provides the monetary value object used for balances and
// operation amounts, plus the validation applied to caller-supplied amounts.
package money

import (
	"github.com/shopspring/decimal"

	"github.com/akuniutka/bank-api-sub000/pkg/domain/common"
)

// minorDigits is the number of fractional digits amounts resolve to (cents).
const minorDigits = 2

// Money is a monetary value normalized to exactly two fractional digits.
// Invariants:
//   - The amount is rounded half-up to two decimal places on construction.
//   - Money is immutable; arithmetic returns new values.
//
// The zero value is 0.00.
type Money struct {
	amount decimal.Decimal
}

// New creates a Money value from a decimal amount, rounding half-up to two
// fractional digits.
func New(amount decimal.Decimal) Money {
	return Money{amount: amount.Round(minorDigits)}
}

// Zero returns a Money value of 0.00.
func Zero() Money {
	return Money{}
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return New(m.amount.Add(other.amount))
}

// Sub returns the difference of two Money values.
func (m Money) Sub(other Money) Money {
	return New(m.amount.Sub(other.amount))
}

// Equal reports whether two Money values represent the same amount.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// LessThan reports whether m is strictly less than other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsNegative reports whether the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String renders the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(minorDigits)
}

// Assert validates a caller-supplied amount against the business rules for
// monetary values. A nil amount is absent. Zero is rejected unless
// zeroAllowed is set: balances may legitimately be zero, transaction amounts
// may not. An amount that changes under half-up rounding to two fractional
// digits carries sub-cent precision and is rejected.
//
// Checks run in a fixed order: absent, negative, zero, minor units. Assert is
// a pure predicate with no side effects.
func Assert(amount *decimal.Decimal, zeroAllowed bool) error {
	if amount == nil {
		return common.E(common.KindInvalidAmount, "amount is null")
	}
	if amount.IsNegative() {
		return common.E(common.KindInvalidAmount, "amount is negative")
	}
	if amount.IsZero() && !zeroAllowed {
		return common.E(common.KindInvalidAmount, "amount is zero")
	}
	if !amount.Round(minorDigits).Equal(*amount) {
		return common.E(common.KindInvalidAmount, "wrong minor units")
	}
	return nil
}
