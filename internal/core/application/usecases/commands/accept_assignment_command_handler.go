package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrNoPendingAssignment is returned when no pending assignment exists for
// the (order, driver) pair.
var ErrNoPendingAssignment = errs.NewObjectNotFoundError(
	"assignment", "no pending assignment for order and driver",
)

// AcceptAssignmentCommandHandler records a driver taking an offered order.
// Resolving the assignment and advancing the delivery to Assigned are one
// atomic unit: if the delivery already progressed past Pending, the whole
// acceptance fails and the assignment stays pending.
type AcceptAssignmentCommandHandler struct {
	uowFactory AcceptanceUoWFactory
}

// NewAcceptAssignmentCommandHandler creates a handler for assignment acceptance.
func NewAcceptAssignmentCommandHandler(uowFactory AcceptanceUoWFactory) AcceptAssignmentCommandHandler {
	return AcceptAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance command.
// Locks the assignment row so concurrent accept/reject calls for the same
// pair serialize; the second resolution always observes the first. A pair
// that was already resolved has no pending offer left, so a repeat accept
// reports ErrNoPendingAssignment.
func (h AcceptAssignmentCommandHandler) Handle(ctx context.Context, cmd AcceptAssignmentCommand) error {
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
		return ErrNoPendingAssignment
	}
	if err != nil {
		return err
	}

	if err = offer.Accept(); err != nil {
		// A resolved pair no longer holds a pending offer for the driver,
		// so accepting it reports the same not-found as a missing row.
		if errors.Is(err, assignment.ErrAssignmentResolved) {
			return ErrNoPendingAssignment
		}
		return err
	}

	if err = assignmentRepo.Update(ctx, offer); err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()

	record, err := deliveryRepo.GetByOrderForUpdate(ctx, cmd.OrderID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// payment has not opened the fulfillment record yet
		if record, err = delivery.NewDelivery(kernel.NewUUID(), cmd.OrderID()); err != nil {
			return err
		}
		if err = record.AssignDriver(cmd.DriverID()); err != nil {
			return err
		}
		if err = deliveryRepo.Add(ctx, record); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err = record.AssignDriver(cmd.DriverID()); err != nil {
			return err
		}
		if err = deliveryRepo.Update(ctx, record); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
