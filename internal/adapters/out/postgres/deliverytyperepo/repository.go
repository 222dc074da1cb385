package deliverytyperepo

import (
	"context"
	"errors"

	"helpii/internal/core/domain/model/deliverytype"
	"helpii/internal/core/domain/model/kernel"
	"helpii/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryTypeRepository implements DeliveryTypeRepository using GORM.
type GormDeliveryTypeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryTypeRepository creates a new GORM delivery type repository.
func NewGormDeliveryTypeRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryTypeRepository {
	return &GormDeliveryTypeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery type to the database.
func (r *GormDeliveryTypeRepository) Add(ctx context.Context, aggregate *deliverytype.DeliveryType) error {
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

// Update saves an existing delivery type to the database.
func (r *GormDeliveryTypeRepository) Update(ctx context.Context, aggregate *deliverytype.DeliveryType) error {
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

// Get retrieves a delivery type by ID.
func (r *GormDeliveryTypeRepository) Get(ctx context.Context, id kernel.UUID) (*deliverytype.DeliveryType, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryTypeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryType", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves a delivery type by its machine-readable code.
// Codes are the stable public identifier used in quote requests, so this is
// the primary lookup path for the quoting surface.
func (r *GormDeliveryTypeRepository) GetByCode(ctx context.Context, code string) (*deliverytype.DeliveryType, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto DeliveryTypeDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryTypeCode", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all active delivery types ordered for customer-facing listings.
func (r *GormDeliveryTypeRepository) GetAllActive(ctx context.Context) ([]*deliverytype.DeliveryType, error) {
	var dtos []DeliveryTypeDTO
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order, code").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	deliveryTypes := make([]*deliverytype.DeliveryType, 0, len(dtos))
	for _, dto := range dtos {
		dt, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveryTypes = append(deliveryTypes, dt)
	}

	return deliveryTypes, nil
}
