// Package commands contains business operations that modify catalog state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"helpii/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryTypeRepoFactory provides access to the delivery type repository within a transaction.
	DeliveryTypeRepoFactory interface {
		DeliveryTypeRepository() ports.DeliveryTypeRepository
	}

	// PricingRuleRepoFactory provides access to the pricing rule repository within a transaction.
	PricingRuleRepoFactory interface {
		PricingRuleRepository() ports.PricingRuleRepository
	}

	// DeliveryTypeUoW manages transactions for delivery-type-only operations.
	// Used when commands only modify delivery type aggregates.
	DeliveryTypeUoW interface {
		TxManager
		DeliveryTypeRepoFactory
	}

	// DeliveryTypeUoWFactory creates new delivery type unit of work instances.
	DeliveryTypeUoWFactory interface {
		Create() DeliveryTypeUoW
	}

	// CatalogUoW manages transactions across delivery types and pricing rules.
	// Used for commands that coordinate changes between both catalog aggregates.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   typeRepo := uow.DeliveryTypeRepository()
	//   ruleRepo := uow.PricingRuleRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	CatalogUoW interface {
		TxManager
		DeliveryTypeRepoFactory
		PricingRuleRepoFactory
	}

	// CatalogUoWFactory creates new unit of work instances for cross-aggregate catalog operations.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}
)
