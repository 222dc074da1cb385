// Package pricingrule contains the PricingRule aggregate: one conditional
// pricing recipe belonging to a delivery type. A rule combines matching
// conditions (weight range, oversize flag, distance threshold) with a
// calculation recipe (per-km, capped, or flat). Rule sets are intentionally
// overlapping; the quote resolver evaluates them in priority order and the
// first matching rule wins.
package pricingrule
