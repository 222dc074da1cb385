package queries

import (
	"context"
	"database/sql"

	"helpii/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryTypesQueryHandler retrieves the active delivery types from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetDeliveryTypesQueryHandler(db)
//	query := NewGetDeliveryTypesQuery()
//
//	types, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get delivery types: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d delivery types\n", len(types))
type GetDeliveryTypesQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryTypesQueryHandler creates a handler for delivery type listing queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveryTypesQueryHandler(db *gorm.DB) GetDeliveryTypesQueryHandler {
	return GetDeliveryTypesQueryHandler{db: db}
}

// Handle executes the query to retrieve all active delivery types.
// Returns a slice of read models sorted by display order.
func (h GetDeliveryTypesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryTypesQuery,
) ([]GetDeliveryTypesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveryTypes := make([]GetDeliveryTypesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			name,
			description,
			base_price,
			max_coverage_km,
			requires_admin_approval,
			display_order
		FROM delivery_types
		WHERE is_active = true
		ORDER BY display_order, code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var deliveryType GetDeliveryTypesQueryResponse
		var id uuid.UUID
		var maxCoverageKm sql.NullFloat64

		err = rows.Scan(
			&id,
			&deliveryType.Code,
			&deliveryType.Name,
			&deliveryType.Description,
			&deliveryType.BasePrice,
			&maxCoverageKm,
			&deliveryType.RequiresAdminApproval,
			&deliveryType.DisplayOrder,
		)
		if err != nil {
			return nil, err
		}

		typeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		deliveryType.ID = typeID

		if maxCoverageKm.Valid {
			deliveryType.MaxCoverageKm = &maxCoverageKm.Float64
		}
		deliveryTypes = append(deliveryTypes, deliveryType)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveryTypes, nil
}
