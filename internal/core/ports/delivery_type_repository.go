// Package ports defines repository interfaces for the pricing catalog.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"helpii/internal/core/domain/model/deliverytype"
	"helpii/internal/core/domain/model/kernel"
)

// DeliveryTypeRepository defines the persistence contract for delivery type
// aggregates. Provides methods for storing and retrieving delivery service
// tiers by identifier and by their stable machine-readable code.
type DeliveryTypeRepository interface {
	// Add persists a new delivery type aggregate to storage.
	// The delivery type must be valid and its code must not already exist.
	Add(ctx context.Context, aggregate *deliverytype.DeliveryType) error

	// Update persists changes to an existing delivery type aggregate.
	// The delivery type must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *deliverytype.DeliveryType) error

	// Get retrieves a delivery type aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*deliverytype.DeliveryType, error)

	// GetByCode retrieves a delivery type by its stable machine-readable code,
	// e.g. "EXPRESS_2HR". Returns errs.ErrObjectNotFound when no delivery type
	// carries the code.
	GetByCode(ctx context.Context, code string) (*deliverytype.DeliveryType, error)

	// GetAllActive retrieves all active delivery types in display order.
	// Used by customer-facing listings and by quote resolution.
	GetAllActive(ctx context.Context) ([]*deliverytype.DeliveryType, error)
}
