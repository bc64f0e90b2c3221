package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"foodrush/internal/core/application/usecases/commands"
)

// DriverReleaseJob periodically frees busy drivers whose orders have all
// reached a terminal status. Runs every minute.
type DriverReleaseJob struct {
	handler commands.ReleaseDriversCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDriverReleaseJob creates a new job for releasing idle drivers.
func NewDriverReleaseJob(handler commands.ReleaseDriversCommandHandler, logger *slog.Logger) *DriverReleaseJob {
	return &DriverReleaseJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "driver_release_job"),
	}
}

// Start schedules the release sweep to run every minute.
func (j *DriverReleaseJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReleaseDriversCommand()

		released, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Driver release sweep failed", "error", err)
			return
		}

		// Most sweeps find nothing to do; stay quiet for those.
		if released > 0 {
			j.logger.InfoContext(ctx, "Released idle drivers", "count", released)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver release job started (running every minute)")
	return nil
}

// Stop stops the release job.
func (j *DriverReleaseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver release job stopped")
}
