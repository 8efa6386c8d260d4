package kernel

import (
	"fmt"

	"galeteria/internal/pkg/errs"
)

// Money is a non-negative amount of currency held as integer cents.
// Prices and order totals are Money; keeping cents instead of floats makes
// total arithmetic exact. The zero value is a valid zero amount.
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money value from integer cents.
// Negative amounts are rejected.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// Cents returns the raw amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MultiplyQty returns the amount multiplied by a line quantity.
func (m Money) MultiplyQty(qty int) Money {
	return Money{cents: m.cents * int64(qty)}
}

// IsEqual compares two amounts by value.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount as a decimal, e.g. "25.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
