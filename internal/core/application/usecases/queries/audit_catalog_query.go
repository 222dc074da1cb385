package queries

import (
	"errors"

	"helpii/internal/core/domain/model/kernel"
	"helpii/internal/pkg/guard"
)

var ErrAuditCatalogQueryIsNotConstructed = errors.New(
	"AuditCatalogQuery must be created via NewAuditCatalogQuery constructor",
)

// AuditCatalogQuery finds active pricing rules that are missing a field their
// calculation type requires. Such rules degrade quotes to a no-match outcome
// at evaluation time, so operators need to spot and fix them before customers
// hit the gap.
//
// Example:
//
//	query := NewAuditCatalogQuery()
//	handler := NewAuditCatalogQueryHandler(db)
//
//	findings, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("catalog audit failed: %w", err)
//	}
//	for _, f := range findings {
//	    log.Warn("degraded rule", "type", f.DeliveryTypeCode, "rule", f.RuleName)
//	}
type AuditCatalogQuery struct {
	guard guard.ConstructorGuard
}

// NewAuditCatalogQuery creates a query to audit the rule catalog.
func NewAuditCatalogQuery() AuditCatalogQuery {
	return AuditCatalogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrAuditCatalogQueryIsNotConstructed if validation fails.
func (q AuditCatalogQuery) Validate() error {
	return q.guard.Validate(ErrAuditCatalogQueryIsNotConstructed)
}

// AuditCatalogQueryResponse describes one degraded rule.
type AuditCatalogQueryResponse struct {
	RuleID           kernel.UUID
	RuleName         string
	DeliveryTypeCode string
	CalculationType  string
	Problem          string
}
