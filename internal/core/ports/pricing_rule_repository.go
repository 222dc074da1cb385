package ports

import (
	"context"

	"helpii/internal/core/domain/model/kernel"
	"helpii/internal/core/domain/model/pricingrule"
)

// PricingRuleRepository defines the persistence contract for pricing rule
// aggregates. Rules are authored through the administrative surface and are
// read-only to quote resolution.
type PricingRuleRepository interface {
	// Add persists a new pricing rule aggregate to storage.
	// The rule must be valid and reference an existing delivery type.
	Add(ctx context.Context, aggregate *pricingrule.PricingRule) error

	// Update persists changes to an existing pricing rule aggregate.
	Update(ctx context.Context, aggregate *pricingrule.PricingRule) error

	// Get retrieves a pricing rule aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*pricingrule.PricingRule, error)

	// GetAllForDeliveryType retrieves every rule belonging to the delivery
	// type, active or not, ordered by priority ascending then weight minimum
	// ascending. The resolver filters inactive rules itself; the audit
	// surface needs the full set.
	GetAllForDeliveryType(ctx context.Context, deliveryTypeID kernel.UUID) ([]*pricingrule.PricingRule, error)

	// GetActiveForDeliveryType retrieves the active rules of the delivery
	// type in evaluation order. This is the read path of quote resolution.
	GetActiveForDeliveryType(ctx context.Context, deliveryTypeID kernel.UUID) ([]*pricingrule.PricingRule, error)
}
