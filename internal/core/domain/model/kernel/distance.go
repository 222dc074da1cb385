package kernel

import (
	"fmt"

	"helpii/internal/pkg/errs"
	"helpii/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrDistanceIsNotConstructed is returned when attempting to use an improperly initialized Distance.
// Distance must be created via NewDistance or DistanceFromFloat.
var ErrDistanceIsNotConstructed = errs.NewValueIsRequiredError(
	"distance must be created via NewDistance or DistanceFromFloat constructors")

// Distance represents a pickup-to-delivery trip distance in kilometers.
// Distance is an immutable value object. Zero is a valid distance: pickup
// and delivery may resolve to the same location.
//
// Example:
//
//	d, err := kernel.DistanceFromFloat(8)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(d) // Output: 8km
type Distance struct {
	km    decimal.Decimal
	guard guard.ConstructorGuard
}

// NewDistance creates a Distance from a decimal kilometer value.
// Returns an error if the value is negative.
func NewDistance(km decimal.Decimal) (Distance, error) {
	if km.IsNegative() {
		return Distance{}, errs.NewValueIsInvalidErrorWithCause("distanceKm",
			fmt.Errorf("%s is negative", km))
	}

	return Distance{
		km:    km,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// DistanceFromFloat creates a Distance from a float64 kilometer value.
func DistanceFromFloat(km float64) (Distance, error) {
	return NewDistance(decimal.NewFromFloat(km))
}

// Validate checks if the Distance was properly constructed.
// Returns ErrDistanceIsNotConstructed for zero-value instances.
func (d Distance) Validate() error {
	return d.guard.Validate(ErrDistanceIsNotConstructed)
}

// Kilometers returns the underlying decimal kilometer value.
func (d Distance) Kilometers() decimal.Decimal {
	return d.km
}

// String returns a human-readable representation such as "8km".
func (d Distance) String() string {
	return d.km.String() + "km"
}
