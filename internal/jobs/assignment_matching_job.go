package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// AssignmentMatchingJob sweeps for assignments waiting on automatic resource
// matching. Runs every second so a newly created assignment is picked up
// almost immediately when resources free up.
type AssignmentMatchingJob struct {
	handler commands.MatchAssignmentCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAssignmentMatchingJob creates a new job for matching pending assignments.
func NewAssignmentMatchingJob(handler commands.MatchAssignmentCommandHandler, logger *slog.Logger) *AssignmentMatchingJob {
	return &AssignmentMatchingJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "assignment_matching_job"),
	}
}

// Start begins the matching sweep, running every second.
func (j *AssignmentMatchingJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewMatchAssignmentCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty backlog and an exhausted candidate pool are
			// expected outcomes, not failures.
			if !errors.Is(err, commands.ErrNoPendingAssignmentFound) && !errors.Is(err, services.ErrNoMatchFound) {
				j.logger.ErrorContext(ctx, "Assignment matching job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Assignment matching job started (running every second)")
	return nil
}

// Stop stops the matching sweep.
func (j *AssignmentMatchingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Assignment matching job stopped")
}
