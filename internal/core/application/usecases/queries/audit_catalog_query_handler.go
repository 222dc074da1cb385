package queries

import (
	"context"

	"helpii/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditCatalogQueryHandler scans the catalog for rules whose stored fields
// are inconsistent with their calculation type. The check runs in SQL so the
// audit stays cheap enough for periodic background execution.
type AuditCatalogQueryHandler struct {
	db *gorm.DB
}

// NewAuditCatalogQueryHandler creates a handler for catalog audit queries.
// Requires a GORM database connection for query execution.
func NewAuditCatalogQueryHandler(db *gorm.DB) AuditCatalogQueryHandler {
	return AuditCatalogQueryHandler{db: db}
}

// Handle executes the audit.
// Returns one finding per active rule that would fail its calculation-type
// requirements at evaluation time, ordered by delivery type and priority.
func (h AuditCatalogQueryHandler) Handle(
	ctx context.Context,
	query AuditCatalogQuery,
) ([]AuditCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	findings := make([]AuditCatalogQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.name,
			dt.code,
			r.calculation_type,
			CASE
				WHEN r.calculation_type IN ('PER_KM', 'CAPPED') AND r.rate_per_km IS NULL
					THEN 'rate_per_km is required for ' || r.calculation_type
				WHEN r.calculation_type = 'FLAT' AND r.flat_total IS NULL
					THEN 'flat_total is required for FLAT'
				ELSE 'calculation_type is unknown'
			END AS problem
		FROM pricing_rules r
		JOIN delivery_types dt ON dt.id = r.delivery_type_id
		WHERE r.is_active = true
		  AND (
			(r.calculation_type IN ('PER_KM', 'CAPPED') AND r.rate_per_km IS NULL)
			OR (r.calculation_type = 'FLAT' AND r.flat_total IS NULL)
			OR r.calculation_type NOT IN ('PER_KM', 'CAPPED', 'FLAT')
		  )
		ORDER BY dt.code, r.priority
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var finding AuditCatalogQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&finding.RuleName,
			&finding.DeliveryTypeCode,
			&finding.CalculationType,
			&finding.Problem,
		)
		if err != nil {
			return nil, err
		}

		ruleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		finding.RuleID = ruleID
		findings = append(findings, finding)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return findings, nil
}
