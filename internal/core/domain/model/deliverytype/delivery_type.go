package deliverytype

import (
	"errors"

	"helpii/internal/core/domain/model/kernel"
	"helpii/internal/pkg/errs"
)

// ErrDeliveryTypeIsNotConstructed is returned when a DeliveryType instance was
// not created through NewDeliveryType. This ensures all delivery types are
// properly validated.
var ErrDeliveryTypeIsNotConstructed = errors.New("DeliveryType must be created via NewDeliveryType constructor")

// DeliveryType represents a delivery service tier with its own base price and
// rule set. It is the aggregate root that pricing rules belong to.
//
// DeliveryType follows these invariants:
//   - Must have a valid unique identifier
//   - Code and name must be non-empty; the code is immutable once rules reference it
//   - Base price must be a valid non-negative amount
//   - Can only be created through the NewDeliveryType constructor
//
// The oversizeHandledBySurcharge flag selects the oversize policy for the
// type: when true, oversize parcels still match the normal weight rules and
// pay the rule's oversize surcharge on top (express-style types); when false,
// oversize parcels are only priced by rules explicitly marked as oversize
// rules.
type DeliveryType struct {
	// id is the unique identifier for the delivery type
	id kernel.UUID

	// code is the stable machine-readable identifier, e.g. "EXPRESS_2HR"
	code string

	// name is the customer-facing display name
	name string

	// description is optional customer-facing copy
	description string

	// basePrice is the starting amount for per-km calculations
	basePrice kernel.Money

	// maxCoverageKm limits the service area (nil means unlimited)
	maxCoverageKm *kernel.Distance

	// oversizeHandledBySurcharge selects the oversize pricing policy
	oversizeHandledBySurcharge bool

	// requiresAdminApproval marks tiers that need manual review before acceptance
	requiresAdminApproval bool

	// isActive enables or disables the type for quoting
	isActive bool

	// displayOrder controls customer-facing listing order
	displayOrder int

	// isConstructed ensures the type was created via NewDeliveryType
	isConstructed bool
}

// NewDeliveryType creates a new DeliveryType instance with validation.
// This is the only way to create a valid DeliveryType.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - code: Stable machine-readable code (must be non-empty)
//   - name: Display name (must be non-empty)
//   - description: Optional customer-facing description
//   - basePrice: Base amount for per-km calculations (must be constructed)
//   - maxCoverageKm: Optional service-area limit
//   - oversizeHandledBySurcharge: Oversize pricing policy for the type
//   - requiresAdminApproval: Whether orders of this tier need manual review
//   - isActive: Whether the type is available for quoting
//   - displayOrder: Customer-facing listing position
func NewDeliveryType(
	id kernel.UUID,
	code string,
	name string,
	description string,
	basePrice kernel.Money,
	maxCoverageKm *kernel.Distance,
	oversizeHandledBySurcharge bool,
	requiresAdminApproval bool,
	isActive bool,
	displayOrder int,
) (*DeliveryType, error) {
	dt := &DeliveryType{
		description:                description,
		oversizeHandledBySurcharge: oversizeHandledBySurcharge,
		requiresAdminApproval:      requiresAdminApproval,
		isActive:                   isActive,
		displayOrder:               displayOrder,
		isConstructed:              true,
	}

	if err := errors.Join(
		dt.setID(id),
		dt.setCode(code),
		dt.setName(name),
		dt.setBasePrice(basePrice),
		dt.setMaxCoverageKm(maxCoverageKm),
	); err != nil {
		return nil, err
	}

	return dt, nil
}

// RestoreDeliveryType reconstructs a DeliveryType from persistence.
// Applies the same invariants as NewDeliveryType; persistence rows that fail
// them indicate corrupted configuration and surface as errors.
func RestoreDeliveryType(
	id kernel.UUID,
	code string,
	name string,
	description string,
	basePrice kernel.Money,
	maxCoverageKm *kernel.Distance,
	oversizeHandledBySurcharge bool,
	requiresAdminApproval bool,
	isActive bool,
	displayOrder int,
) (*DeliveryType, error) {
	return NewDeliveryType(
		id, code, name, description, basePrice, maxCoverageKm,
		oversizeHandledBySurcharge, requiresAdminApproval, isActive, displayOrder,
	)
}

// Validate ensures the DeliveryType instance was properly constructed.
// Returns ErrDeliveryTypeIsNotConstructed otherwise.
func (d *DeliveryType) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryTypeIsNotConstructed
	}

	return nil
}

// IsEqual compares two delivery types by their unique identifiers.
func (d *DeliveryType) IsEqual(other *DeliveryType) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery type's unique identifier.
func (d *DeliveryType) ID() kernel.UUID {
	return d.id
}

// Code returns the stable machine-readable code.
func (d *DeliveryType) Code() string {
	return d.code
}

// Name returns the customer-facing display name.
func (d *DeliveryType) Name() string {
	return d.name
}

// Description returns the optional customer-facing description.
func (d *DeliveryType) Description() string {
	return d.description
}

// BasePrice returns the base amount used by per-km calculations.
func (d *DeliveryType) BasePrice() kernel.Money {
	return d.basePrice
}

// MaxCoverageKm returns the optional service-area limit.
// Returns nil when coverage is unlimited.
func (d *DeliveryType) MaxCoverageKm() *kernel.Distance {
	return d.maxCoverageKm
}

// OversizeHandledBySurcharge reports the oversize pricing policy.
// True means oversize parcels match normal weight rules and pay a surcharge;
// false means only dedicated oversize rules may price them.
func (d *DeliveryType) OversizeHandledBySurcharge() bool {
	return d.oversizeHandledBySurcharge
}

// RequiresAdminApproval reports whether orders of this tier need manual review.
func (d *DeliveryType) RequiresAdminApproval() bool {
	return d.requiresAdminApproval
}

// IsActive reports whether the type is available for quoting.
func (d *DeliveryType) IsActive() bool {
	return d.isActive
}

// DisplayOrder returns the customer-facing listing position.
func (d *DeliveryType) DisplayOrder() int {
	return d.displayOrder
}

// setID validates and sets the delivery type's unique identifier.
func (d *DeliveryType) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

// setCode validates and sets the machine-readable code.
func (d *DeliveryType) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	d.code = code
	return nil
}

// setName validates and sets the display name.
func (d *DeliveryType) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

// setBasePrice validates and sets the base price.
func (d *DeliveryType) setBasePrice(basePrice kernel.Money) error {
	if err := basePrice.Validate(); err != nil {
		return err
	}
	d.basePrice = basePrice
	return nil
}

// setMaxCoverageKm validates and sets the optional coverage limit.
func (d *DeliveryType) setMaxCoverageKm(maxCoverageKm *kernel.Distance) error {
	if maxCoverageKm == nil {
		return nil
	}
	if err := maxCoverageKm.Validate(); err != nil {
		return err
	}
	d.maxCoverageKm = maxCoverageKm
	return nil
}
