// Package jobs provides scheduled background tasks for the pricing service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for catalog health.
//
// # Available Jobs
//
// 1. CatalogAuditJob - Runs every minute to detect pricing rules whose stored
// fields are inconsistent with their calculation type
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(auditCatalogHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Audit findings are expected operational states and are logged as warnings
// - Audit execution failures indicate system issues and are logged as errors
package jobs
