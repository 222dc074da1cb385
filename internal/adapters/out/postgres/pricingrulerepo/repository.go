package pricingrulerepo

import (
	"context"
	"errors"

	"helpii/internal/core/domain/model/kernel"
	"helpii/internal/core/domain/model/pricingrule"
	"helpii/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPricingRuleRepository implements PricingRuleRepository using GORM.
type GormPricingRuleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPricingRuleRepository creates a new GORM pricing rule repository.
func NewGormPricingRuleRepository(db *gorm.DB, tracker aggregateTracker) *GormPricingRuleRepository {
	return &GormPricingRuleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pricing rule to the database.
func (r *GormPricingRuleRepository) Add(ctx context.Context, aggregate *pricingrule.PricingRule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing pricing rule to the database.
func (r *GormPricingRuleRepository) Update(ctx context.Context, aggregate *pricingrule.PricingRule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&dto).Select("*").Updates(dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a pricing rule by ID.
func (r *GormPricingRuleRepository) Get(ctx context.Context, id kernel.UUID) (*pricingrule.PricingRule, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PricingRuleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pricingRule", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForDeliveryType retrieves all rules of a delivery type, active or not.
// This is the administrative view used for catalog management and auditing.
func (r *GormPricingRuleRepository) GetAllForDeliveryType(
	ctx context.Context,
	deliveryTypeID kernel.UUID,
) ([]*pricingrule.PricingRule, error) {
	if err := deliveryTypeID.Validate(); err != nil {
		return nil, err
	}

	return r.findRules(ctx, "delivery_type_id = ?", deliveryTypeID.Bytes())
}

// GetActiveForDeliveryType retrieves the active rules of a delivery type in
// evaluation order: priority ascending, then weight minimum ascending.
// This is the read path for quote resolution.
func (r *GormPricingRuleRepository) GetActiveForDeliveryType(
	ctx context.Context,
	deliveryTypeID kernel.UUID,
) ([]*pricingrule.PricingRule, error) {
	if err := deliveryTypeID.Validate(); err != nil {
		return nil, err
	}

	return r.findRules(ctx, "delivery_type_id = ? AND is_active = ?", deliveryTypeID.Bytes(), true)
}

func (r *GormPricingRuleRepository) findRules(
	ctx context.Context,
	query string,
	args ...any,
) ([]*pricingrule.PricingRule, error) {
	var dtos []PricingRuleDTO
	if err := r.db.WithContext(ctx).
		Where(query, args...).
		Order("priority, weight_min").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	rules := make([]*pricingrule.PricingRule, 0, len(dtos))
	for _, dto := range dtos {
		rule, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}
