package commands

import (
	"context"

	"helpii/internal/core/domain/model/pricingrule"
)

// CreatePricingRuleCommandHandler handles the business logic for authoring
// a new pricing rule under an existing delivery type.
//
// Example:
//
//	handler := NewCreatePricingRuleCommandHandler(uowFactory)
//	cmd, _ := NewCreatePricingRuleCommand("SAME_DAY", "Same Day Heavy", spec)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("pricing rule creation failed: %w", err)
//	}
type CreatePricingRuleCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreatePricingRuleCommandHandler creates a handler for pricing rule creation.
// Requires a CatalogUoWFactory because the rule must be resolved against its
// delivery type within the same transaction.
func NewCreatePricingRuleCommandHandler(uowFactory CatalogUoWFactory) CreatePricingRuleCommandHandler {
	return CreatePricingRuleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pricing rule creation command.
// Resolves the owning delivery type by code, constructs the rule with full
// calculation-type validation, and persists it within a transaction.
// Returns errs.ErrObjectNotFound when the delivery type code is unknown.
func (h *CreatePricingRuleCommandHandler) Handle(ctx context.Context, cmd CreatePricingRuleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	dt, err := uow.DeliveryTypeRepository().GetByCode(ctx, cmd.DeliveryTypeCode())
	if err != nil {
		return err
	}

	rule, err := pricingrule.NewPricingRule(cmd.RuleID(), dt.ID(), cmd.Name(), cmd.Spec())
	if err != nil {
		return err
	}

	if err = uow.PricingRuleRepository().Add(ctx, rule); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
