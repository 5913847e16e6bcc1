package jobs

import (
	"context"
	"log/slog"

	"fleet/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// LicenseExpiryJob deactivates drivers whose licenses have expired.
// Runs at the top of every hour; an expired driver keeps any work in
// progress but is never selected again.
type LicenseExpiryJob struct {
	handler commands.DeactivateExpiredDriversCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLicenseExpiryJob creates a new job for the license expiry sweep.
func NewLicenseExpiryJob(handler commands.DeactivateExpiredDriversCommandHandler, logger *slog.Logger) *LicenseExpiryJob {
	return &LicenseExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "license_expiry_job"),
	}
}

// Start begins the license expiry sweep, running hourly.
func (j *LicenseExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDeactivateExpiredDriversCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "License expiry job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "License expiry job started (running hourly)")
	return nil
}

// Stop stops the license expiry sweep.
func (j *LicenseExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "License expiry job stopped")
}
