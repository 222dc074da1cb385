package services

import (
	"cmp"
	"errors"
	"log/slog"
	"slices"

	"helpii/internal/core/domain/model/deliverytype"
	"helpii/internal/core/domain/model/kernel"
	"helpii/internal/core/domain/model/pricingrule"
)

// ErrNoRuleMatched is returned when the inputs are valid but no active rule
// of the delivery type covers them. This is a catalog gap, not an input
// error: callers fall back to a manual quote pending operator review, and
// operators patch the catalog.
var ErrNoRuleMatched = errors.New("no pricing rule matched")

// Quote is the result of resolving order inputs against a delivery type's
// rule set: the matched rule, the computed price, and the facts needed to
// explain the price to the caller.
type Quote struct {
	// Rule is the pricing rule that won the evaluation.
	Rule *pricingrule.PricingRule

	// Price is the final price, rounded to minor-unit precision.
	Price kernel.Money

	// BasePrice is the delivery type's base price the formula started from.
	BasePrice kernel.Money

	// IsOversize echoes the oversize flag the quote was computed with.
	IsOversize bool

	// SurchargeApplied reports whether an oversize surcharge was added.
	SurchargeApplied bool
}

// QuoteResolver is a domain service that deterministically maps order inputs
// (weight, distance, oversize flag) to exactly one price under a delivery
// type's rule set, or reports that no rule covers them.
//
// Key responsibilities:
//   - Ordering rules for evaluation (priority ascending, weight minimum ascending)
//   - Selecting the first matching active rule; no partial scoring
//   - Delegating the price formula to the matched rule
//   - Downgrading rule data-quality failures to a no-match outcome
//
// Business rules:
//   - Rule sets are intentionally overlapping; evaluation order is significant
//   - Oversize policy comes from the delivery type, never from a type code
//   - Resolution is a pure function of inputs and the catalog snapshot
//
// Example usage:
//
//	resolver := services.NewQuoteResolver(logger)
//	quote, err := resolver.ResolveQuote(deliveryType, rules, weight, distance, false)
//	if errors.Is(err, services.ErrNoRuleMatched) {
//	    // Catalog gap: fall back to manual pricing
//	    return
//	}
//	if err != nil {
//	    // Handle invalid inputs
//	    return
//	}
//	// quote.Price holds the final amount
type QuoteResolver struct {
	logger *slog.Logger
}

// NewQuoteResolver creates a new QuoteResolver instance.
// A nil logger falls back to the process default logger.
func NewQuoteResolver(logger *slog.Logger) QuoteResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return QuoteResolver{logger: logger}
}

// ResolveQuote evaluates the delivery type's rules in order and prices the
// first one that matches the given inputs.
//
// Parameters:
//   - dt: The delivery type being quoted (must be constructed)
//   - rules: The type's pricing rules, in any order; inactive rules are ignored
//   - weight: Parcel weight (constructed Weight, so strictly positive)
//   - distance: Trip distance (constructed Distance, zero allowed)
//   - isOversize: Whether the parcel is flagged oversize
//
// Returns:
//   - Quote: The matched rule, final price, and breakdown facts
//   - error: ErrNoRuleMatched when no active rule covers the inputs or the
//     winning rule could not be priced; validation errors for unconstructed
//     inputs
//
// Evaluation order is priority ascending, tie-broken by weight minimum
// ascending, which keeps resolution deterministic when administrators give
// two rules the same priority. The first matching rule wins and the search
// stops; a winning rule that fails its own data-quality check is logged and
// reported as ErrNoRuleMatched rather than letting a lower-priority rule
// price inputs its author never intended it for.
func (r QuoteResolver) ResolveQuote(
	dt *deliverytype.DeliveryType,
	rules []*pricingrule.PricingRule,
	weight kernel.Weight,
	distance kernel.Distance,
	isOversize bool,
) (Quote, error) {
	if err := errors.Join(dt.Validate(), weight.Validate(), distance.Validate()); err != nil {
		return Quote{}, err
	}

	for _, rule := range sortRulesForEvaluation(rules) {
		if !rule.IsActive() {
			continue
		}
		if !rule.Matches(weight, distance, isOversize, dt.OversizeHandledBySurcharge()) {
			continue
		}

		price, err := rule.Price(dt.BasePrice(), distance, isOversize)
		if err != nil {
			if errors.Is(err, pricingrule.ErrRuleDataQuality) {
				r.logger.Warn("matched rule cannot be priced, treating as no match",
					"deliveryType", dt.Code(),
					"rule", rule.Name(),
					"error", err)
				return Quote{}, ErrNoRuleMatched
			}
			return Quote{}, err
		}

		return Quote{
			Rule:             rule,
			Price:            price,
			BasePrice:        dt.BasePrice(),
			IsOversize:       isOversize,
			SurchargeApplied: isOversize && rule.OversizeSurcharge() != nil && rule.OversizeSurcharge().Amount().IsPositive(),
		}, nil
	}

	return Quote{}, ErrNoRuleMatched
}

// sortRulesForEvaluation returns a copy of the rules in evaluation order:
// priority ascending, tie-broken by weight minimum ascending. The input
// slice is never mutated; resolution must not reorder the caller's catalog
// snapshot.
func sortRulesForEvaluation(rules []*pricingrule.PricingRule) []*pricingrule.PricingRule {
	sorted := slices.Clone(rules)
	slices.SortStableFunc(sorted, func(a, b *pricingrule.PricingRule) int {
		if c := cmp.Compare(a.Priority(), b.Priority()); c != 0 {
			return c
		}
		return a.WeightMin().Cmp(b.WeightMin())
	})
	return sorted
}
