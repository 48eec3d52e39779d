package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/report"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// SubmitReportCommandHandler applies the abuse throttle.
// The report insert and the consequence on the target (points decrement,
// possible availability flip) are one atomic unit; the priority snapshot is
// derived from the points value before the decrement.
type SubmitReportCommandHandler struct {
	uowFactory ReportUoWFactory
	cache      ports.EntityCache
}

// NewSubmitReportCommandHandler creates a handler for report submission.
func NewSubmitReportCommandHandler(
	uowFactory ReportUoWFactory, cache ports.EntityCache,
) SubmitReportCommandHandler {
	return SubmitReportCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle processes the report command.
// A repeat report for the same (target, reporter) pair is a conflict; the
// unique index on the report store backs the application check.
func (h SubmitReportCommandHandler) Handle(ctx context.Context, cmd SubmitReportCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reportRepo := uow.ReportRepository()
	target := cmd.Target()

	exists, err := reportRepo.Exists(ctx, target, cmd.ReporterID())
	if err != nil {
		return err
	}
	if exists {
		return report.ErrDuplicateReport
	}

	switch target.Kind {
	case report.KindOrder:
		orderRepo := uow.OrderRepository()

		aggregate, err := orderRepo.GetForUpdate(ctx, target.ID)
		if err != nil {
			return err
		}

		filed, err := report.NewReport(
			kernel.NewUUID(), target, cmd.ReporterID(), cmd.Reason(), aggregate.Points(),
		)
		if err != nil {
			return err
		}

		if err = reportRepo.Add(ctx, filed); err != nil {
			return err
		}

		aggregate.ApplyReportPenalty()
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	case report.KindPost:
		postRepo := uow.PostRepository()

		reported, err := postRepo.GetForUpdate(ctx, target.ID)
		if err != nil {
			return err
		}

		filed, err := report.NewReport(
			kernel.NewUUID(), target, cmd.ReporterID(), cmd.Reason(), reported.Points(),
		)
		if err != nil {
			return err
		}

		if err = reportRepo.Add(ctx, filed); err != nil {
			return err
		}

		reported.ApplyReportPenalty()
		if err = postRepo.Update(ctx, reported); err != nil {
			return err
		}
	default:
		return errs.NewValueIsInvalidError("kind")
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if target.Kind == report.KindOrder {
		_ = h.cache.Invalidate(ctx, ports.OrderCacheKey(target.ID))
	}
	return nil
}
