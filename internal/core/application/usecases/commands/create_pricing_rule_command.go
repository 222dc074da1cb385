package commands

import (
	"errors"

	"helpii/internal/core/domain/model/kernel"
	"helpii/internal/core/domain/model/pricingrule"
	"helpii/internal/pkg/guard"
)

var (
	ErrCreatePricingRuleCommandIsNotConstructed = errors.New(
		"CreatePricingRuleCommand must be created via NewCreatePricingRuleCommand constructor",
	)
	ErrDeliveryTypeCodeIsRequired = errors.New("delivery type code is required")
	ErrRuleNameIsRequired         = errors.New("rule name is required")
)

// CreatePricingRuleCommand represents a request to author a new pricing rule
// for an existing delivery type, identified by its code.
//
// The rule conditions and calculation recipe travel as a pricingrule.RuleSpec;
// the full calculation-type consistency checks run when the aggregate is
// constructed in the handler.
//
// Example:
//
//	rate, _ := kernel.MoneyFromFloat(5)
//	spec := pricingrule.RuleSpec{
//	    WeightMin:       decimal.Zero,
//	    CalculationType: pricingrule.PerKm,
//	    RatePerKm:       &rate,
//	    IsActive:        true,
//	    Priority:        10,
//	}
//	cmd, err := NewCreatePricingRuleCommand("EXPRESS_2HR", "Express Standard", spec)
//	if err != nil {
//	    return fmt.Errorf("invalid rule data: %w", err)
//	}
//
//	handler := NewCreatePricingRuleCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create pricing rule: %w", err)
//	}
type CreatePricingRuleCommand struct { //nolint:recvcheck //using for validation
	ruleID           kernel.UUID
	deliveryTypeCode string
	name             string
	spec             pricingrule.RuleSpec

	guard guard.ConstructorGuard
}

// NewCreatePricingRuleCommand creates a command to author a new pricing rule.
// Generates the rule identifier and validates that the delivery type code and
// rule name are non-empty.
func NewCreatePricingRuleCommand(
	deliveryTypeCode string,
	name string,
	spec pricingrule.RuleSpec,
) (CreatePricingRuleCommand, error) {
	cmd := CreatePricingRuleCommand{
		ruleID: kernel.NewUUID(),
		spec:   spec,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryTypeCode(deliveryTypeCode),
		cmd.setName(name),
	); err != nil {
		return CreatePricingRuleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreatePricingRuleCommandIsNotConstructed if validation fails.
func (c CreatePricingRuleCommand) Validate() error {
	return c.guard.Validate(ErrCreatePricingRuleCommandIsNotConstructed)
}

// RuleID returns the generated identifier for the new rule.
func (c CreatePricingRuleCommand) RuleID() kernel.UUID {
	return c.ruleID
}

// DeliveryTypeCode returns the code of the delivery type the rule belongs to.
func (c CreatePricingRuleCommand) DeliveryTypeCode() string {
	return c.deliveryTypeCode
}

// Name returns the administrative label of the rule.
func (c CreatePricingRuleCommand) Name() string {
	return c.name
}

// Spec returns the rule's condition and calculation attributes.
func (c CreatePricingRuleCommand) Spec() pricingrule.RuleSpec {
	return c.spec
}

func (c *CreatePricingRuleCommand) setDeliveryTypeCode(code string) error {
	if code == "" {
		return ErrDeliveryTypeCodeIsRequired
	}

	c.deliveryTypeCode = code
	return nil
}

func (c *CreatePricingRuleCommand) setName(name string) error {
	if name == "" {
		return ErrRuleNameIsRequired
	}

	c.name = name
	return nil
}
