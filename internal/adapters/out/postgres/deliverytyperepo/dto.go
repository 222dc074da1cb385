// Package deliverytyperepo provides data transfer objects and mapping functions for delivery type persistence.
// This package implements the repository pattern for the delivery type aggregate, handling
// the conversion between domain entities and database representations.
package deliverytyperepo

import (
	"helpii/internal/core/domain/model/deliverytype"
	"helpii/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryTypeDTO represents the database structure for persisting delivery type aggregates.
// Money and distance attributes are stored as fixed-point decimals so quote
// calculations read back exactly what operators entered.
type DeliveryTypeDTO struct {
	ID                         uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Code                       string           `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name                       string           `gorm:"type:varchar(255);not null"`
	Description                string           `gorm:"type:text"`
	BasePrice                  decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	MaxCoverageKm              *decimal.Decimal `gorm:"type:decimal(10,2)"`
	OversizeHandledBySurcharge bool             `gorm:"not null"`
	RequiresAdminApproval      bool             `gorm:"not null"`
	IsActive                   bool             `gorm:"not null;index"`
	DisplayOrder               int              `gorm:"type:int;not null"`
}

// TableName specifies the database table name for delivery type entities.
// Overrides GORM's default naming convention to use "delivery_types" instead of "delivery_type_dtos".
func (DeliveryTypeDTO) TableName() string {
	return "delivery_types"
}

// fromDomain converts a delivery type domain aggregate to its database representation.
func fromDomain(deliveryType *deliverytype.DeliveryType) DeliveryTypeDTO {
	var maxCoverageKm *decimal.Decimal
	if deliveryType.MaxCoverageKm() != nil {
		km := deliveryType.MaxCoverageKm().Kilometers()
		maxCoverageKm = &km
	}

	return DeliveryTypeDTO{
		ID:                         deliveryType.ID().Bytes(),
		Code:                       deliveryType.Code(),
		Name:                       deliveryType.Name(),
		Description:                deliveryType.Description(),
		BasePrice:                  deliveryType.BasePrice().Amount(),
		MaxCoverageKm:              maxCoverageKm,
		OversizeHandledBySurcharge: deliveryType.OversizeHandledBySurcharge(),
		RequiresAdminApproval:      deliveryType.RequiresAdminApproval(),
		IsActive:                   deliveryType.IsActive(),
		DisplayOrder:               deliveryType.DisplayOrder(),
	}
}

// toDomain converts a database DTO to a delivery type domain aggregate.
// Reconstructs the aggregate using RestoreDeliveryType with full validation.
func toDomain(dto DeliveryTypeDTO) (*deliverytype.DeliveryType, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	basePrice, err := kernel.NewMoney(dto.BasePrice)
	if err != nil {
		return nil, err
	}

	var maxCoverageKm *kernel.Distance
	if dto.MaxCoverageKm != nil {
		km, kmErr := kernel.NewDistance(*dto.MaxCoverageKm)
		if kmErr != nil {
			return nil, kmErr
		}
		maxCoverageKm = &km
	}

	return deliverytype.RestoreDeliveryType(
		id,
		dto.Code,
		dto.Name,
		dto.Description,
		basePrice,
		maxCoverageKm,
		dto.OversizeHandledBySurcharge,
		dto.RequiresAdminApproval,
		dto.IsActive,
		dto.DisplayOrder,
	)
}
