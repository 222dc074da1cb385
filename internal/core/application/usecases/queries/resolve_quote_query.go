// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"helpii/internal/core/domain/model/kernel"
	"helpii/internal/pkg/guard"
)

var (
	ErrResolveQuoteQueryIsNotConstructed = errors.New(
		"ResolveQuoteQuery must be created via NewResolveQuoteQuery constructor",
	)
	ErrDeliveryTypeCodeIsRequired = errors.New("delivery type code is required")
)

// ResolveQuoteQuery represents a request to price a parcel against the
// catalog: delivery type code plus the three order-side inputs.
//
// The numeric inputs are validated at construction through the kernel value
// objects, so a constructed query always carries a positive weight and a
// non-negative distance.
//
// Example:
//
//	query, err := NewResolveQuoteQuery("SAME_DAY", 5, 8, false)
//	if err != nil {
//	    return fmt.Errorf("invalid quote inputs: %w", err)
//	}
//
//	handler := NewResolveQuoteQueryHandler(typeRepo, ruleRepo, resolver)
//	quote, err := handler.Handle(ctx, query)
type ResolveQuoteQuery struct { //nolint:recvcheck //using for validation
	deliveryTypeCode string
	weight           kernel.Weight
	distance         kernel.Distance
	isOversize       bool

	guard guard.ConstructorGuard
}

// NewResolveQuoteQuery creates a quote resolution query from raw inputs.
// Fails when the code is empty, the weight is not strictly positive, or the
// distance is negative.
func NewResolveQuoteQuery(
	deliveryTypeCode string,
	weightKg float64,
	distanceKm float64,
	isOversize bool,
) (ResolveQuoteQuery, error) {
	query := ResolveQuoteQuery{
		isOversize: isOversize,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setDeliveryTypeCode(deliveryTypeCode),
		query.setWeight(weightKg),
		query.setDistance(distanceKm),
	); err != nil {
		return ResolveQuoteQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrResolveQuoteQueryIsNotConstructed if validation fails.
func (q ResolveQuoteQuery) Validate() error {
	return q.guard.Validate(ErrResolveQuoteQueryIsNotConstructed)
}

// DeliveryTypeCode returns the requested delivery type code.
func (q ResolveQuoteQuery) DeliveryTypeCode() string {
	return q.deliveryTypeCode
}

// Weight returns the parcel weight.
func (q ResolveQuoteQuery) Weight() kernel.Weight {
	return q.weight
}

// Distance returns the trip distance.
func (q ResolveQuoteQuery) Distance() kernel.Distance {
	return q.distance
}

// IsOversize returns whether the parcel is flagged oversize.
func (q ResolveQuoteQuery) IsOversize() bool {
	return q.isOversize
}

func (q *ResolveQuoteQuery) setDeliveryTypeCode(code string) error {
	if code == "" {
		return ErrDeliveryTypeCodeIsRequired
	}

	q.deliveryTypeCode = code
	return nil
}

func (q *ResolveQuoteQuery) setWeight(weightKg float64) error {
	weight, err := kernel.WeightFromFloat(weightKg)
	if err != nil {
		return err
	}

	q.weight = weight
	return nil
}

func (q *ResolveQuoteQuery) setDistance(distanceKm float64) error {
	distance, err := kernel.DistanceFromFloat(distanceKm)
	if err != nil {
		return err
	}

	q.distance = distance
	return nil
}

// QuoteBreakdown explains how an estimate was computed. Pointer fields are
// populated according to the matched rule's calculation type.
type QuoteBreakdown struct {
	DistanceKm        float64
	WeightKg          float64
	IsOversize        bool
	DeliveryTypeName  string
	DeliveryTypeCode  string
	BasePrice         float64
	RuleName          string
	CalculationType   string
	RatePerKm         *float64
	MaxPrice          *float64
	FlatTotal         *float64
	OversizeSurcharge *float64
	Formula           string
}

// ResolveQuoteQueryResponse is the read model returned by quote resolution:
// the estimate, its breakdown, and whether the tier needs manual review.
type ResolveQuoteQueryResponse struct {
	Estimate              float64
	RequiresAdminApproval bool
	Breakdown             QuoteBreakdown
}
