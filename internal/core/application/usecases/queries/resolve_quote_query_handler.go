package queries

import (
	"context"
	"fmt"

	"helpii/internal/core/domain/model/deliverytype"
	"helpii/internal/core/domain/model/kernel"
	"helpii/internal/core/domain/model/pricingrule"
	"helpii/internal/core/domain/services"
	"helpii/internal/core/ports"
	"helpii/internal/pkg/errs"
)

// ResolveQuoteQueryHandler prices order inputs against the catalog.
// Unlike the simple list queries, quote resolution runs domain logic, so the
// handler loads full aggregates through the repositories instead of reading
// raw rows.
//
// Example:
//
//	handler := NewResolveQuoteQueryHandler(typeRepo, ruleRepo, resolver)
//	query, _ := NewResolveQuoteQuery("SAME_DAY", 5, 8, false)
//
//	quote, err := handler.Handle(ctx, query)
//	if errors.Is(err, services.ErrNoRuleMatched) {
//	    // Catalog gap: surface "manual quote pending"
//	}
type ResolveQuoteQueryHandler struct {
	typeRepo ports.DeliveryTypeRepository
	ruleRepo ports.PricingRuleRepository
	resolver services.QuoteResolver
}

// NewResolveQuoteQueryHandler creates a handler for quote resolution.
// Requires read access to both catalog repositories and the domain resolver.
func NewResolveQuoteQueryHandler(
	typeRepo ports.DeliveryTypeRepository,
	ruleRepo ports.PricingRuleRepository,
	resolver services.QuoteResolver,
) ResolveQuoteQueryHandler {
	return ResolveQuoteQueryHandler{
		typeRepo: typeRepo,
		ruleRepo: ruleRepo,
		resolver: resolver,
	}
}

// Handle executes quote resolution.
//
// Returns errs.ErrObjectNotFound when the delivery type code is unknown or
// the type is inactive, and services.ErrNoRuleMatched when no active rule
// covers the inputs. Both are terminal outcomes of the request, not
// transient faults.
func (h ResolveQuoteQueryHandler) Handle(
	ctx context.Context,
	query ResolveQuoteQuery,
) (ResolveQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ResolveQuoteQueryResponse{}, err
	}

	dt, err := h.typeRepo.GetByCode(ctx, query.DeliveryTypeCode())
	if err != nil {
		return ResolveQuoteQueryResponse{}, err
	}
	if !dt.IsActive() {
		return ResolveQuoteQueryResponse{},
			errs.NewObjectNotFoundError("deliveryTypeCode", query.DeliveryTypeCode())
	}

	rules, err := h.ruleRepo.GetActiveForDeliveryType(ctx, dt.ID())
	if err != nil {
		return ResolveQuoteQueryResponse{}, err
	}

	quote, err := h.resolver.ResolveQuote(dt, rules, query.Weight(), query.Distance(), query.IsOversize())
	if err != nil {
		return ResolveQuoteQueryResponse{}, err
	}

	return ResolveQuoteQueryResponse{
		Estimate:              quote.Price.Float64(),
		RequiresAdminApproval: dt.RequiresAdminApproval(),
		Breakdown:             buildBreakdown(dt, quote, query),
	}, nil
}

// buildBreakdown assembles the explanatory read model for a resolved quote,
// including a human-readable formula string such as "$10 + $3/km × 8.0km".
func buildBreakdown(dt *deliverytype.DeliveryType, quote services.Quote, query ResolveQuoteQuery) QuoteBreakdown {
	rule := quote.Rule

	breakdown := QuoteBreakdown{
		DistanceKm:       query.Distance().Kilometers().InexactFloat64(),
		WeightKg:         query.Weight().Kilograms().InexactFloat64(),
		IsOversize:       query.IsOversize(),
		DeliveryTypeName: dt.Name(),
		DeliveryTypeCode: dt.Code(),
		BasePrice:        dt.BasePrice().Float64(),
		RuleName:         rule.Name(),
		CalculationType:  rule.CalculationType().String(),
	}

	switch rule.CalculationType() {
	case pricingrule.PerKm:
		breakdown.RatePerKm = moneyFloat(rule.RatePerKm())
		breakdown.Formula = fmt.Sprintf("$%s + $%s/km × %.1fkm",
			dt.BasePrice(), moneyString(rule.RatePerKm()), breakdown.DistanceKm)
	case pricingrule.Capped:
		breakdown.RatePerKm = moneyFloat(rule.RatePerKm())
		breakdown.MaxPrice = moneyFloat(rule.MaxPrice())
		breakdown.Formula = fmt.Sprintf("$%s + $%s/km (max $%s)",
			dt.BasePrice(), moneyString(rule.RatePerKm()), moneyString(rule.MaxPrice()))
	case pricingrule.Flat, pricingrule.UnknownCalculation:
		flat := dt.BasePrice()
		if rule.FlatTotal() != nil {
			flat = *rule.FlatTotal()
		}
		flatValue := flat.Float64()
		breakdown.FlatTotal = &flatValue
		breakdown.Formula = fmt.Sprintf("Flat $%s", flat)
	}

	if quote.SurchargeApplied {
		breakdown.OversizeSurcharge = moneyFloat(rule.OversizeSurcharge())
		breakdown.Formula += fmt.Sprintf(" + $%s oversize", moneyString(rule.OversizeSurcharge()))
	}

	return breakdown
}

func moneyFloat(m *kernel.Money) *float64 {
	if m == nil {
		return nil
	}
	v := m.Float64()
	return &v
}

func moneyString(m *kernel.Money) string {
	if m == nil {
		return "0"
	}
	return m.String()
}
