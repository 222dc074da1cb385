package commands

import (
	"errors"

	"helpii/internal/core/domain/model/kernel"
	"helpii/internal/pkg/guard"
)

var (
	ErrCreateDeliveryTypeCommandIsNotConstructed = errors.New(
		"CreateDeliveryTypeCommand must be created via NewCreateDeliveryTypeCommand constructor",
	)
	ErrCodeIsRequired = errors.New("code is required")
	ErrNameIsRequired = errors.New("name is required")
)

// CreateDeliveryTypeCommand represents a request to register a new delivery
// service tier in the catalog. Encapsulates the tier's identity, pricing
// baseline, and oversize policy.
//
// Example:
//
//	base, _ := kernel.MoneyFromFloat(30)
//	cmd, err := NewCreateDeliveryTypeCommand("EXPRESS_2HR", "2-Hour Express",
//	    "Delivered within 2 hours", base, nil, true, false, true, 1)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery type data: %w", err)
//	}
//
//	handler := NewCreateDeliveryTypeCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create delivery type: %w", err)
//	}
type CreateDeliveryTypeCommand struct { //nolint:recvcheck //using for validation
	deliveryTypeID             kernel.UUID
	code                       string
	name                       string
	description                string
	basePrice                  kernel.Money
	maxCoverageKm              *kernel.Distance
	oversizeHandledBySurcharge bool
	requiresAdminApproval      bool
	isActive                   bool
	displayOrder               int

	guard guard.ConstructorGuard
}

// NewCreateDeliveryTypeCommand creates a command to register a new delivery type.
// Generates the aggregate identifier and validates that code and name are
// non-empty and the base price is constructed.
func NewCreateDeliveryTypeCommand(
	code string,
	name string,
	description string,
	basePrice kernel.Money,
	maxCoverageKm *kernel.Distance,
	oversizeHandledBySurcharge bool,
	requiresAdminApproval bool,
	isActive bool,
	displayOrder int,
) (CreateDeliveryTypeCommand, error) {
	cmd := CreateDeliveryTypeCommand{
		deliveryTypeID:             kernel.NewUUID(),
		description:                description,
		oversizeHandledBySurcharge: oversizeHandledBySurcharge,
		requiresAdminApproval:      requiresAdminApproval,
		isActive:                   isActive,
		displayOrder:               displayOrder,
		guard:                      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCode(code),
		cmd.setName(name),
		cmd.setBasePrice(basePrice),
		cmd.setMaxCoverageKm(maxCoverageKm),
	); err != nil {
		return CreateDeliveryTypeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryTypeCommandIsNotConstructed if validation fails.
func (c CreateDeliveryTypeCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryTypeCommandIsNotConstructed)
}

// DeliveryTypeID returns the generated identifier for the new delivery type.
func (c CreateDeliveryTypeCommand) DeliveryTypeID() kernel.UUID {
	return c.deliveryTypeID
}

// Code returns the stable machine-readable code.
func (c CreateDeliveryTypeCommand) Code() string {
	return c.code
}

// Name returns the customer-facing display name.
func (c CreateDeliveryTypeCommand) Name() string {
	return c.name
}

// Description returns the optional customer-facing description.
func (c CreateDeliveryTypeCommand) Description() string {
	return c.description
}

// BasePrice returns the base amount for per-km calculations.
func (c CreateDeliveryTypeCommand) BasePrice() kernel.Money {
	return c.basePrice
}

// MaxCoverageKm returns the optional service-area limit.
func (c CreateDeliveryTypeCommand) MaxCoverageKm() *kernel.Distance {
	return c.maxCoverageKm
}

// OversizeHandledBySurcharge returns the oversize pricing policy.
func (c CreateDeliveryTypeCommand) OversizeHandledBySurcharge() bool {
	return c.oversizeHandledBySurcharge
}

// RequiresAdminApproval returns whether orders of this tier need manual review.
func (c CreateDeliveryTypeCommand) RequiresAdminApproval() bool {
	return c.requiresAdminApproval
}

// IsActive returns whether the type is available for quoting.
func (c CreateDeliveryTypeCommand) IsActive() bool {
	return c.isActive
}

// DisplayOrder returns the customer-facing listing position.
func (c CreateDeliveryTypeCommand) DisplayOrder() int {
	return c.displayOrder
}

func (c *CreateDeliveryTypeCommand) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}

	c.code = code
	return nil
}

func (c *CreateDeliveryTypeCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateDeliveryTypeCommand) setBasePrice(basePrice kernel.Money) error {
	if err := basePrice.Validate(); err != nil {
		return err
	}

	c.basePrice = basePrice
	return nil
}

func (c *CreateDeliveryTypeCommand) setMaxCoverageKm(maxCoverageKm *kernel.Distance) error {
	if maxCoverageKm == nil {
		return nil
	}
	if err := maxCoverageKm.Validate(); err != nil {
		return err
	}

	c.maxCoverageKm = maxCoverageKm
	return nil
}
