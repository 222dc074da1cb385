package queries

import (
	"errors"

	"helpii/internal/core/domain/model/kernel"
	"helpii/internal/pkg/guard"
)

var ErrGetDeliveryTypesQueryIsNotConstructed = errors.New(
	"GetDeliveryTypesQuery must be created via NewGetDeliveryTypesQuery constructor",
)

// GetDeliveryTypesQuery retrieves the active delivery service tiers for
// customer-facing listings, in display order.
//
// Example:
//
//	query := NewGetDeliveryTypesQuery()
//	handler := NewGetDeliveryTypesQueryHandler(db)
//
//	types, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve delivery types: %w", err)
//	}
//
//	for _, dt := range types {
//	    fmt.Printf("%s: %s from $%.2f\n", dt.Code, dt.Name, dt.BasePrice)
//	}
type GetDeliveryTypesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliveryTypesQuery creates a query to retrieve active delivery types.
// This is a parameterless query that fetches the complete customer-facing list.
func NewGetDeliveryTypesQuery() GetDeliveryTypesQuery {
	return GetDeliveryTypesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryTypesQueryIsNotConstructed if validation fails.
func (q GetDeliveryTypesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryTypesQueryIsNotConstructed)
}

// GetDeliveryTypesQueryResponse represents one delivery type in the read model.
// Contains the data a customer needs to choose a tier.
type GetDeliveryTypesQueryResponse struct {
	ID                    kernel.UUID
	Code                  string
	Name                  string
	Description           string
	BasePrice             float64
	MaxCoverageKm         *float64
	RequiresAdminApproval bool
	DisplayOrder          int
}
