package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DispatchJob periodically offers paid, unassigned orders to eligible
// drivers. Each order goes through the same assignment command the HTTP
// dispatcher endpoint uses, so the job and the manual path share every gate.
type DispatchJob struct {
	uowFactory commands.DispatchUoWFactory
	handler    commands.AssignDriverCommandHandler
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewDispatchJob creates a job that dispatches pending orders on the given
// cron schedule (with a seconds field).
func NewDispatchJob(
	uowFactory commands.DispatchUoWFactory,
	handler commands.AssignDriverCommandHandler,
	schedule string,
	logger *slog.Logger,
) *DispatchJob {
	return &DispatchJob{
		uowFactory: uowFactory,
		handler:    handler,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "dispatch_job"),
	}
}

// Start begins the dispatch job on its schedule.
func (j *DispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch job started", "schedule", j.schedule)
	return nil
}

// Stop stops the dispatch job.
func (j *DispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch job stopped")
}

func (j *DispatchJob) run() {
	ctx := context.Background()

	candidates, err := j.uowFactory.Create().OrderRepository().GetAllPaidUnassigned(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Dispatch job failed to list pending orders", "error", err)
		return
	}

	for _, candidate := range candidates {
		cmd, err := commands.NewAssignDriverCommand(candidate.ID())
		if err != nil {
			j.logger.ErrorContext(ctx, "Dispatch job built an invalid command",
				"order_id", candidate.ID().String(), "error", err)
			continue
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// No eligible drivers and lost races are expected between ticks
			if errors.Is(err, services.ErrNoDriversAvailable) || errors.Is(err, errs.ErrConflict) {
				continue
			}
			j.logger.ErrorContext(ctx, "Dispatch job failed to assign order",
				"order_id", candidate.ID().String(), "error", err)
		}
	}
}
