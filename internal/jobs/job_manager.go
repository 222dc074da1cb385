package jobs

import (
	"fmt"
	"log/slog"

	"helpii/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	catalogAuditJob *CatalogAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the audit query handler as a dependency to wire up the job execution.
func NewJobManager(
	auditCatalogHandler queries.AuditCatalogQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		catalogAuditJob: NewCatalogAuditJob(auditCatalogHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.catalogAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start catalog audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.catalogAuditJob.Stop()
}
