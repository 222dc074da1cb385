package kernel

import (
	"fmt"

	"helpii/internal/pkg/errs"
	"helpii/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrWeightIsNotConstructed is returned when attempting to use an improperly initialized Weight.
// Weight must be created via NewWeight or WeightFromFloat.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError(
	"weight must be created via NewWeight or WeightFromFloat constructors")

// Weight represents a parcel weight in kilograms.
// Weight is an immutable value object; a valid weight is strictly positive,
// since a zero-weight parcel cannot be priced.
//
// Example:
//
//	w, err := kernel.WeightFromFloat(5)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(w) // Output: 5kg
type Weight struct {
	kg    decimal.Decimal
	guard guard.ConstructorGuard
}

// NewWeight creates a Weight from a decimal kilogram value.
// Returns an error if the value is zero or negative.
func NewWeight(kg decimal.Decimal) (Weight, error) {
	if !kg.IsPositive() {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weightKg",
			fmt.Errorf("%s is not greater than 0", kg))
	}

	return Weight{
		kg:    kg,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// WeightFromFloat creates a Weight from a float64 kilogram value.
func WeightFromFloat(kg float64) (Weight, error) {
	return NewWeight(decimal.NewFromFloat(kg))
}

// Validate checks if the Weight was properly constructed.
// Returns ErrWeightIsNotConstructed for zero-value instances.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

// Kilograms returns the underlying decimal kilogram value.
func (w Weight) Kilograms() decimal.Decimal {
	return w.kg
}

// String returns a human-readable representation such as "5kg".
func (w Weight) String() string {
	return w.kg.String() + "kg"
}
