// Package pricingrulerepo provides data transfer objects and mapping functions for pricing rule persistence.
// This package implements the repository pattern for the pricing rule aggregate, handling
// the conversion between domain entities and database representations.
package pricingrulerepo

import (
	"helpii/internal/core/domain/model/kernel"
	"helpii/internal/core/domain/model/pricingrule"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricingRuleDTO represents the database structure for persisting pricing rule aggregates.
// Nullable columns map to the rule's optional attributes: an absent weight
// maximum, distance gate, cap, flat total, or surcharge is stored as NULL.
type PricingRuleDTO struct {
	ID                uuid.UUID        `gorm:"type:uuid;primaryKey"`
	DeliveryTypeID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name              string           `gorm:"type:varchar(255);not null"`
	WeightMin         decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	WeightMax         *decimal.Decimal `gorm:"type:decimal(10,2)"`
	IsOversizeRule    bool             `gorm:"not null"`
	DistanceThreshold *decimal.Decimal `gorm:"type:decimal(10,2)"`
	IsShortTrip       *bool
	CalculationType   string           `gorm:"type:varchar(20);not null"`
	RatePerKm         *decimal.Decimal `gorm:"type:decimal(10,2)"`
	MaxPrice          *decimal.Decimal `gorm:"type:decimal(10,2)"`
	FlatTotal         *decimal.Decimal `gorm:"type:decimal(10,2)"`
	OversizeSurcharge *decimal.Decimal `gorm:"type:decimal(10,2)"`
	IsActive          bool             `gorm:"not null;index"`
	Priority          int              `gorm:"type:int;not null"`
}

// TableName specifies the database table name for pricing rule entities.
// Overrides GORM's default naming convention to use "pricing_rules" instead of "pricing_rule_dtos".
func (PricingRuleDTO) TableName() string {
	return "pricing_rules"
}

// fromDomain converts a pricing rule domain aggregate to its database representation.
func fromDomain(rule *pricingrule.PricingRule) PricingRuleDTO {
	return PricingRuleDTO{
		ID:                rule.ID().Bytes(),
		DeliveryTypeID:    rule.DeliveryTypeID().Bytes(),
		Name:              rule.Name(),
		WeightMin:         rule.WeightMin(),
		WeightMax:         rule.WeightMax(),
		IsOversizeRule:    rule.IsOversizeRule(),
		DistanceThreshold: rule.DistanceThreshold(),
		IsShortTrip:       rule.IsShortTrip(),
		CalculationType:   rule.CalculationType().String(),
		RatePerKm:         moneyToDecimal(rule.RatePerKm()),
		MaxPrice:          moneyToDecimal(rule.MaxPrice()),
		FlatTotal:         moneyToDecimal(rule.FlatTotal()),
		OversizeSurcharge: moneyToDecimal(rule.OversizeSurcharge()),
		IsActive:          rule.IsActive(),
		Priority:          rule.Priority(),
	}
}

// toDomain converts a database DTO to a pricing rule domain aggregate.
// Uses RestorePricingRule so degraded historical rows still load: an unknown
// calculation type or a missing required field surfaces at pricing time and
// through the catalog audit, not as a load failure.
func toDomain(dto PricingRuleDTO) (*pricingrule.PricingRule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	deliveryTypeID, err := kernel.UUIDFromBytes(dto.DeliveryTypeID[:])
	if err != nil {
		return nil, err
	}

	ratePerKm, err := moneyFromDecimal(dto.RatePerKm)
	if err != nil {
		return nil, err
	}
	maxPrice, err := moneyFromDecimal(dto.MaxPrice)
	if err != nil {
		return nil, err
	}
	flatTotal, err := moneyFromDecimal(dto.FlatTotal)
	if err != nil {
		return nil, err
	}
	oversizeSurcharge, err := moneyFromDecimal(dto.OversizeSurcharge)
	if err != nil {
		return nil, err
	}

	// Unrecognized stored values restore as the unknown calculation type,
	// which the audit reports and the resolver treats as a no-match.
	calculationType, _ := pricingrule.CalculationTypeFromString(dto.CalculationType)

	return pricingrule.RestorePricingRule(id, deliveryTypeID, dto.Name, pricingrule.RuleSpec{
		WeightMin:         dto.WeightMin,
		WeightMax:         dto.WeightMax,
		IsOversizeRule:    dto.IsOversizeRule,
		DistanceThreshold: dto.DistanceThreshold,
		IsShortTrip:       dto.IsShortTrip,
		CalculationType:   calculationType,
		RatePerKm:         ratePerKm,
		MaxPrice:          maxPrice,
		FlatTotal:         flatTotal,
		OversizeSurcharge: oversizeSurcharge,
		IsActive:          dto.IsActive,
		Priority:          dto.Priority,
	})
}

// moneyToDecimal maps an optional money attribute to its nullable column value.
func moneyToDecimal(m *kernel.Money) *decimal.Decimal {
	if m == nil {
		return nil
	}
	amount := m.Amount()
	return &amount
}

// moneyFromDecimal maps a nullable column value back to an optional money attribute.
func moneyFromDecimal(d *decimal.Decimal) (*kernel.Money, error) {
	if d == nil {
		return nil, nil
	}
	m, err := kernel.NewMoney(*d)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
