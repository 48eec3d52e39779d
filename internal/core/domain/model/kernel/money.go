package kernel

import (
	"fmt"
	"math"

	"fulfillment/internal/pkg/errs"
)

// Money represents a monetary amount in minor currency units (e.g. cents).
// It is an immutable value object; amounts are never negative.
//
// Money is used for catalog prices, snapshot item prices, and derived order
// amounts. Arithmetic stays in integer minor units so repeated recomputation
// of an order amount cannot drift.
type Money struct {
	amount int64
}

// NewMoney creates a Money value from an amount in minor units.
// Returns an error if the amount is negative.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}
	return Money{amount: amount}, nil
}

// Zero returns a Money value of zero.
func Zero() Money {
	return Money{}
}

// Amount returns the value in minor currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// MultiplyBy returns the amount multiplied by a non-negative quantity.
// Used to compute an item subtotal from its snapshot price.
func (m Money) MultiplyBy(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}
	if quantity > 0 && m.amount > math.MaxInt64/int64(quantity) {
		return Money{}, errs.NewValueIsOutOfRangeError(
			"subtotal", m.amount, 0, int64(math.MaxInt64))
	}
	return Money{amount: m.amount * int64(quantity)}, nil
}

// Add returns the sum of two Money values, rejecting int64 overflow.
func (m Money) Add(other Money) (Money, error) {
	if m.amount > math.MaxInt64-other.amount {
		return Money{}, errs.NewValueIsOutOfRangeError(
			"amount", m.amount, 0, int64(math.MaxInt64))
	}
	return Money{amount: m.amount + other.amount}, nil
}

// IsEqual compares two Money values.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String implements fmt.Stringer, rendering the raw minor-unit amount.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}
