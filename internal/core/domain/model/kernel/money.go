package kernel

import (
	"helpii/internal/pkg/errs"
	"helpii/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created via NewMoney, MoneyFromFloat, or MoneyFromString.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromFloat, or MoneyFromString constructors")

// Money represents a non-negative currency amount with minor-unit precision.
// Money is an immutable value object backed by an arbitrary-precision decimal,
// so intermediate pricing arithmetic never loses cents to binary floats.
//
// The zero value of Money is invalid and will fail validation - use the
// constructors to create instances.
//
// Example:
//
//	base, err := kernel.MoneyFromFloat(30.00)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(base) // Output: 30
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), "0", "unbounded")
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromFloat creates a Money value from a float64 amount.
// Intended for configuration and seed data where amounts are written as
// literals; the float is converted through decimal.NewFromFloat.
func MoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// MoneyFromString parses a Money value from its decimal string representation.
// Returns an error if the string is not a valid decimal or is negative.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// Validate checks if the Money was properly constructed.
// Returns ErrMoneyIsNotConstructed for zero-value instances.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float64 for serialization boundaries.
// Precision is preserved for currency-scale values.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

// Round2 returns the amount rounded to 2 decimal places using round-half-up
// semantics. Rounding is only applied at the end of a price calculation,
// never on intermediate terms.
func (m Money) Round2() Money {
	return Money{
		amount: m.amount.Round(2),
		guard:  m.guard,
	}
}

// IsEqual compares two monetary amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}
