package jobs

import (
	"fmt"
	"log/slog"

	"fleet/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	assignmentMatchingJob *AssignmentMatchingJob
	licenseExpiryJob      *LicenseExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	matchAssignmentHandler commands.MatchAssignmentCommandHandler,
	deactivateExpiredDriversHandler commands.DeactivateExpiredDriversCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		assignmentMatchingJob: NewAssignmentMatchingJob(matchAssignmentHandler, logger),
		licenseExpiryJob:      NewLicenseExpiryJob(deactivateExpiredDriversHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.assignmentMatchingJob.Start(); err != nil {
		return fmt.Errorf("failed to start assignment matching job: %w", err)
	}

	if err := jm.licenseExpiryJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.assignmentMatchingJob.Stop()
		return fmt.Errorf("failed to start license expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.licenseExpiryJob.Stop()
	jm.assignmentMatchingJob.Stop()
}
