// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
package jobs

import (
	"fmt"
	"log/slog"

	"foodrush/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	driverReleaseJob *DriverReleaseJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	releaseDriversHandler commands.ReleaseDriversCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		driverReleaseJob: NewDriverReleaseJob(releaseDriversHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.driverReleaseJob.Start(); err != nil {
		return fmt.Errorf("failed to start driver release job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.driverReleaseJob.Stop()
}
