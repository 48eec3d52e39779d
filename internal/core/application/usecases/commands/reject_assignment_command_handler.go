package commands

import (
	"context"
	"errors"

	"fulfillment/internal/pkg/errs"
)

// ErrAssignmentNotFound is returned when no assignment exists for the
// (order, driver) pair.
var ErrAssignmentNotFound = errs.NewObjectNotFoundError(
	"assignment", "no assignment for order and driver",
)

// RejectAssignmentCommandHandler records a driver declining an offered order.
// Rejection is not idempotent: a repeat rejection is a conflict, not a no-op.
// No delivery record is touched.
type RejectAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewRejectAssignmentCommandHandler creates a handler for assignment rejection.
func NewRejectAssignmentCommandHandler(uowFactory AssignmentUoWFactory) RejectAssignmentCommandHandler {
	return RejectAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command.
func (h RejectAssignmentCommandHandler) Handle(ctx context.Context, cmd RejectAssignmentCommand) error {
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

	assignmentRepo := uow.AssignmentRepository()

	offer, err := assignmentRepo.GetByOrderAndDriverForUpdate(ctx, cmd.OrderID(), cmd.DriverID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrAssignmentNotFound
	}
	if err != nil {
		return err
	}

	if err = offer.Reject(); err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, offer); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
