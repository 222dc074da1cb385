package pricingrule

import (
	"errors"
	"fmt"

	"helpii/internal/core/domain/model/kernel"
	"helpii/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrPricingRuleIsNotConstructed is returned when a PricingRule instance was
	// not created through NewPricingRule or RestorePricingRule.
	ErrPricingRuleIsNotConstructed = errors.New(
		"PricingRule must be created via NewPricingRule or RestorePricingRule constructor")

	// ErrRuleDataQuality indicates that a rule is missing a field its
	// calculation type requires. The quote resolver logs such rules for
	// operator attention and reports a no-match outcome instead of
	// crashing evaluation.
	ErrRuleDataQuality = errors.New("pricing rule data is inconsistent with its calculation type")
)

// RuleSpec carries the condition and calculation attributes of a pricing rule.
// It keeps the constructors readable: identity fields stay positional while
// the dozen optional attributes are named.
//
// Nil pointer fields mean "not set": an unbounded weight maximum, a
// distance-agnostic rule, an uncapped calculation, or no oversize surcharge.
type RuleSpec struct {
	// WeightMin is the inclusive lower weight bound in kilograms.
	WeightMin decimal.Decimal

	// WeightMax is the inclusive upper weight bound in kilograms (nil = unbounded).
	WeightMax *decimal.Decimal

	// IsOversizeRule marks the rule as exclusively for oversize parcels.
	IsOversizeRule bool

	// DistanceThreshold is the short/long trip boundary in kilometers.
	DistanceThreshold *decimal.Decimal

	// IsShortTrip gates the rule on trip length: true = distance ≤ threshold,
	// false = distance > threshold, nil = distance-agnostic.
	IsShortTrip *bool

	// CalculationType selects the pricing formula.
	CalculationType CalculationType

	// RatePerKm is the per-kilometer rate used by PerKm and Capped.
	RatePerKm *kernel.Money

	// MaxPrice caps Capped calculations (nil = no cap).
	MaxPrice *kernel.Money

	// FlatTotal is the fixed amount used by Flat.
	FlatTotal *kernel.Money

	// OversizeSurcharge is added when the priced parcel is oversize,
	// regardless of calculation type (nil = no surcharge).
	OversizeSurcharge *kernel.Money

	// IsActive enables or disables the rule for evaluation.
	IsActive bool

	// Priority orders evaluation: lower numbers are tried first.
	Priority int
}

// PricingRule represents one conditional pricing recipe belonging to a
// delivery type. It is matched against order inputs (weight, distance,
// oversize flag) and, once matched, computes the price under its calculation
// type.
//
// PricingRule follows these invariants:
//   - Must have valid identifiers for itself and its delivery type
//   - Weight bounds are inclusive and coherent (min ≤ max when both present)
//   - A trip-length gate requires a distance threshold
//   - A strictly constructed rule carries the fields its calculation type needs
type PricingRule struct {
	// id is the unique identifier for the rule
	id kernel.UUID

	// deliveryTypeID identifies the owning delivery type
	deliveryTypeID kernel.UUID

	// name labels the rule for administrators and quote breakdowns
	name string

	spec RuleSpec

	// isConstructed ensures the rule was created via a constructor
	isConstructed bool
}

// NewPricingRule creates a new PricingRule with full validation, including
// the calculation-type field requirements (PerKm and Capped require a rate
// per km, Flat requires a flat total). This is the constructor for rules
// authored through the administrative surface.
func NewPricingRule(id kernel.UUID, deliveryTypeID kernel.UUID, name string, spec RuleSpec) (*PricingRule, error) {
	rule, err := newPricingRule(id, deliveryTypeID, name, spec)
	if err != nil {
		return nil, err
	}

	if err := rule.ValidateCalculationFields(); err != nil {
		return nil, err
	}

	return rule, nil
}

// RestorePricingRule reconstructs a PricingRule from persistence.
// Structural invariants are still enforced, but calculation-type field
// requirements are not: historical rows may be degraded, and the pricing
// path reports those as data-quality outcomes instead of refusing to load
// the catalog.
func RestorePricingRule(id kernel.UUID, deliveryTypeID kernel.UUID, name string, spec RuleSpec) (*PricingRule, error) {
	return newPricingRule(id, deliveryTypeID, name, spec)
}

func newPricingRule(id kernel.UUID, deliveryTypeID kernel.UUID, name string, spec RuleSpec) (*PricingRule, error) {
	rule := &PricingRule{
		isConstructed: true,
	}

	if err := errors.Join(
		rule.setID(id),
		rule.setDeliveryTypeID(deliveryTypeID),
		rule.setName(name),
		rule.setSpec(spec),
	); err != nil {
		return nil, err
	}

	return rule, nil
}

// Validate ensures the PricingRule instance was properly constructed.
// Returns ErrPricingRuleIsNotConstructed otherwise.
func (r *PricingRule) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrPricingRuleIsNotConstructed
	}

	return nil
}

// ValidateCalculationFields checks that the rule carries the fields its
// calculation type requires. A Flat rule without a flat total is flagged
// here even though pricing falls back to the delivery type's base price:
// the fallback is a safety net, not a configuration to keep.
func (r *PricingRule) ValidateCalculationFields() error {
	switch r.spec.CalculationType {
	case PerKm, Capped:
		if r.spec.RatePerKm == nil {
			return fmt.Errorf("rule %q: %w: ratePerKm is required for %s",
				r.name, ErrRuleDataQuality, r.spec.CalculationType)
		}
	case Flat:
		if r.spec.FlatTotal == nil {
			return fmt.Errorf("rule %q: %w: flatTotal is required for FLAT",
				r.name, ErrRuleDataQuality)
		}
	case UnknownCalculation:
		return fmt.Errorf("rule %q: %w: calculation type is unknown", r.name, ErrRuleDataQuality)
	}
	return nil
}

// Matches reports whether this rule applies to the given order inputs.
//
// Gates, in order:
//   - Oversize: a dedicated oversize rule only matches oversize parcels.
//     A non-oversize rule rejects oversize parcels unless the owning
//     delivery type handles oversize with a surcharge (express-style policy,
//     passed as oversizeHandledBySurcharge).
//   - Weight: weight ≥ weightMin, and weight ≤ weightMax when bounded.
//     Both bounds are inclusive.
//   - Distance: when trip-length gated, a short-trip rule requires
//     distance ≤ threshold and a long-trip rule requires distance > threshold.
//     A distance exactly at the threshold is a short trip.
func (r *PricingRule) Matches(
	weight kernel.Weight,
	distance kernel.Distance,
	isOversize bool,
	oversizeHandledBySurcharge bool,
) bool {
	if r.spec.IsOversizeRule && !isOversize {
		return false
	}
	if !r.spec.IsOversizeRule && isOversize && !oversizeHandledBySurcharge {
		return false
	}

	w := weight.Kilograms()
	if w.LessThan(r.spec.WeightMin) {
		return false
	}
	if r.spec.WeightMax != nil && w.GreaterThan(*r.spec.WeightMax) {
		return false
	}

	if r.spec.IsShortTrip != nil && r.spec.DistanceThreshold != nil {
		d := distance.Kilometers()
		if *r.spec.IsShortTrip && d.GreaterThan(*r.spec.DistanceThreshold) {
			return false
		}
		if !*r.spec.IsShortTrip && d.LessThanOrEqual(*r.spec.DistanceThreshold) {
			return false
		}
	}

	return true
}

// Price computes the price for a matched rule.
//
// Formulas by calculation type, with base taken from the owning delivery type:
//   - Flat: flatTotal, falling back to the base price when flatTotal is absent
//   - PerKm: base + ratePerKm × distance
//   - Capped: min(base + ratePerKm × distance, maxPrice); an absent cap is a no-op
//
// When the priced parcel is oversize and the rule carries a positive
// surcharge, the surcharge is added regardless of calculation type.
//
// The result is rounded to 2 decimal places (round half up) at the final
// step only; intermediate terms keep full precision.
//
// Returns an error wrapping ErrRuleDataQuality when the rule is missing a
// field its calculation type requires at evaluation time.
func (r *PricingRule) Price(
	basePrice kernel.Money,
	distance kernel.Distance,
	isOversize bool,
) (kernel.Money, error) {
	if err := errors.Join(r.Validate(), basePrice.Validate(), distance.Validate()); err != nil {
		return kernel.Money{}, err
	}

	base := basePrice.Amount()
	var total decimal.Decimal

	switch r.spec.CalculationType {
	case Flat:
		if r.spec.FlatTotal != nil {
			total = r.spec.FlatTotal.Amount()
		} else {
			// Data-quality safety net; audit flags these rules separately.
			total = base
		}
	case PerKm, Capped:
		if r.spec.RatePerKm == nil {
			return kernel.Money{}, fmt.Errorf("rule %q: %w: ratePerKm is required for %s",
				r.name, ErrRuleDataQuality, r.spec.CalculationType)
		}
		total = base.Add(r.spec.RatePerKm.Amount().Mul(distance.Kilometers()))
		if r.spec.CalculationType == Capped && r.spec.MaxPrice != nil {
			total = decimal.Min(total, r.spec.MaxPrice.Amount())
		}
	case UnknownCalculation:
		return kernel.Money{}, fmt.Errorf("rule %q: %w: calculation type is unknown",
			r.name, ErrRuleDataQuality)
	}

	if isOversize && r.spec.OversizeSurcharge != nil && r.spec.OversizeSurcharge.Amount().IsPositive() {
		total = total.Add(r.spec.OversizeSurcharge.Amount())
	}

	price, err := kernel.NewMoney(total)
	if err != nil {
		return kernel.Money{}, err
	}

	return price.Round2(), nil
}

// IsEqual compares two rules by their unique identifiers.
func (r *PricingRule) IsEqual(other *PricingRule) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rule's unique identifier.
func (r *PricingRule) ID() kernel.UUID {
	return r.id
}

// DeliveryTypeID returns the identifier of the owning delivery type.
func (r *PricingRule) DeliveryTypeID() kernel.UUID {
	return r.deliveryTypeID
}

// Name returns the administrative label of the rule.
func (r *PricingRule) Name() string {
	return r.name
}

// WeightMin returns the inclusive lower weight bound in kilograms.
func (r *PricingRule) WeightMin() decimal.Decimal {
	return r.spec.WeightMin
}

// WeightMax returns the inclusive upper weight bound in kilograms.
// Returns nil when the rule is unbounded above.
func (r *PricingRule) WeightMax() *decimal.Decimal {
	return r.spec.WeightMax
}

// IsOversizeRule reports whether the rule is exclusively for oversize parcels.
func (r *PricingRule) IsOversizeRule() bool {
	return r.spec.IsOversizeRule
}

// DistanceThreshold returns the short/long trip boundary in kilometers.
// Returns nil for distance-agnostic rules.
func (r *PricingRule) DistanceThreshold() *decimal.Decimal {
	return r.spec.DistanceThreshold
}

// IsShortTrip returns the trip-length gate: true = short trips only,
// false = long trips only, nil = any distance.
func (r *PricingRule) IsShortTrip() *bool {
	return r.spec.IsShortTrip
}

// CalculationType returns the pricing formula selector.
func (r *PricingRule) CalculationType() CalculationType {
	return r.spec.CalculationType
}

// RatePerKm returns the per-kilometer rate used by PerKm and Capped rules.
func (r *PricingRule) RatePerKm() *kernel.Money {
	return r.spec.RatePerKm
}

// MaxPrice returns the cap applied by Capped rules, nil when uncapped.
func (r *PricingRule) MaxPrice() *kernel.Money {
	return r.spec.MaxPrice
}

// FlatTotal returns the fixed amount used by Flat rules.
func (r *PricingRule) FlatTotal() *kernel.Money {
	return r.spec.FlatTotal
}

// OversizeSurcharge returns the additive oversize surcharge, nil when none.
func (r *PricingRule) OversizeSurcharge() *kernel.Money {
	return r.spec.OversizeSurcharge
}

// IsActive reports whether the rule participates in quote evaluation.
func (r *PricingRule) IsActive() bool {
	return r.spec.IsActive
}

// Priority returns the evaluation priority; lower numbers are tried first.
func (r *PricingRule) Priority() int {
	return r.spec.Priority
}

// setID validates and sets the rule's unique identifier.
func (r *PricingRule) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

// setDeliveryTypeID validates and sets the owning delivery type's identifier.
func (r *PricingRule) setDeliveryTypeID(deliveryTypeID kernel.UUID) error {
	if err := deliveryTypeID.Validate(); err != nil {
		return err
	}
	r.deliveryTypeID = deliveryTypeID
	return nil
}

// setName validates and sets the administrative label.
func (r *PricingRule) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

// setSpec validates and sets the condition and calculation attributes.
func (r *PricingRule) setSpec(spec RuleSpec) error {
	if spec.WeightMin.IsNegative() {
		return errs.NewValueIsOutOfRangeError("weightMin", spec.WeightMin.String(), "0", "unbounded")
	}
	if spec.WeightMax != nil && spec.WeightMax.LessThan(spec.WeightMin) {
		return errs.NewValueIsInvalidErrorWithCause("weightMax",
			fmt.Errorf("%s is below weightMin %s", spec.WeightMax, spec.WeightMin))
	}
	if spec.IsShortTrip != nil && spec.DistanceThreshold == nil {
		return errs.NewValueIsRequiredErrorWithCause("distanceThreshold",
			errors.New("a trip-length gate needs a threshold"))
	}
	if spec.DistanceThreshold != nil && spec.DistanceThreshold.IsNegative() {
		return errs.NewValueIsOutOfRangeError("distanceThreshold",
			spec.DistanceThreshold.String(), "0", "unbounded")
	}

	for name, amount := range map[string]*kernel.Money{
		"ratePerKm":         spec.RatePerKm,
		"maxPrice":          spec.MaxPrice,
		"flatTotal":         spec.FlatTotal,
		"oversizeSurcharge": spec.OversizeSurcharge,
	} {
		if amount == nil {
			continue
		}
		if err := amount.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(name, err)
		}
	}

	r.spec = spec
	return nil
}
