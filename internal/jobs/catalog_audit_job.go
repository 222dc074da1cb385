package jobs

import (
	"context"
	"log/slog"

	"helpii/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// CatalogAuditJob periodically scans the pricing catalog for rules that are
// missing a field their calculation type requires. Such rules silently degrade
// quotes to a no-match outcome, so findings are logged for operator attention.
type CatalogAuditJob struct {
	handler queries.AuditCatalogQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCatalogAuditJob creates a new job for auditing the pricing catalog.
// Uses AuditCatalogQueryHandler to scan for degraded rules every minute.
func NewCatalogAuditJob(handler queries.AuditCatalogQueryHandler, logger *slog.Logger) *CatalogAuditJob {
	return &CatalogAuditJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "catalog_audit_job"),
	}
}

// Start begins the catalog audit job to run at the top of every minute.
func (j *CatalogAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewAuditCatalogQuery()

		findings, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Catalog audit job failed", "error", err)
			return
		}

		for _, finding := range findings {
			j.logger.WarnContext(ctx, "Degraded pricing rule detected",
				"ruleId", finding.RuleID.String(),
				"rule", finding.RuleName,
				"deliveryType", finding.DeliveryTypeCode,
				"calculationType", finding.CalculationType,
				"problem", finding.Problem,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog audit job started (running every minute)")
	return nil
}

// Stop stops the catalog audit job.
func (j *CatalogAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Catalog audit job stopped")
}
