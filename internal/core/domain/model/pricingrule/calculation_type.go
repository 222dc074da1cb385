package pricingrule

import (
	"fmt"

	"helpii/internal/pkg/errs"
)

// CalculationType selects the pricing formula a rule applies once matched.
//
// The three formulas, with base taken from the owning delivery type:
//
//	PerKm:  price = base + ratePerKm × distance
//	Capped: price = min(base + ratePerKm × distance, maxPrice)
//	Flat:   price = flatTotal
//
// CalculationType is a value object that validates enum values and provides
// string representations for persistence and display.
type CalculationType int

const (
	// UnknownCalculation represents an invalid or undefined calculation type.
	// This value (0) helps catch uninitialized CalculationType values.
	UnknownCalculation CalculationType = iota

	// PerKm prices the trip as base price plus a rate per kilometer.
	PerKm

	// Capped prices like PerKm but never above the rule's maximum price.
	Capped

	// Flat prices the trip at a fixed total, ignoring distance.
	Flat
)

// getCalculationTypeStrings returns a map of CalculationType values to their
// string representations. All values are included for string conversion.
func getCalculationTypeStrings() map[CalculationType]string {
	return map[CalculationType]string{
		UnknownCalculation: "UNKNOWN",
		PerKm:              "PER_KM",
		Capped:             "CAPPED",
		Flat:               "FLAT",
	}
}

// getValidCalculationTypeStrings returns a map of only valid CalculationType values.
func getValidCalculationTypeStrings() map[CalculationType]string {
	//nolint:exhaustive // UnknownCalculation is intentionally excluded as it's invalid
	return map[CalculationType]string{
		PerKm:  "PER_KM",
		Capped: "CAPPED",
		Flat:   "FLAT",
	}
}

// Validate checks if the CalculationType value is valid.
// Valid values are PerKm, Capped, and Flat.
func (c CalculationType) Validate() error {
	if _, ok := getValidCalculationTypeStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("calculationType",
			fmt.Errorf("%d is not a valid calculation type", c))
	}
	return nil
}

// String returns the wire name of the calculation type, e.g. "PER_KM".
// Returns "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (c CalculationType) String() string {
	if s, ok := getCalculationTypeStrings()[c]; ok {
		return s
	}
	return "UNKNOWN"
}

// CalculationTypeFromString parses a wire name such as "PER_KM" into a
// CalculationType. Returns an error for unrecognized names.
func CalculationTypeFromString(s string) (CalculationType, error) {
	for value, name := range getValidCalculationTypeStrings() {
		if name == s {
			return value, nil
		}
	}
	return UnknownCalculation, errs.NewValueIsInvalidErrorWithCause("calculationType",
		fmt.Errorf("%q is not a valid calculation type", s))
}
