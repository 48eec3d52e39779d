package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderAlreadyAssigned is returned when an unresolved assignment
	// already exists for the order. A second offer is blocked until the
	// driver responds to the first one.
	ErrOrderAlreadyAssigned = errs.NewConflictError("order already has an unresolved assignment")
	// ErrOrderIsNotPaid is returned when dispatching an order whose payment
	// has not been confirmed.
	ErrOrderIsNotPaid = errs.NewInvalidStateError("order is not paid yet")
)

// AssignDriverCommandHandler orchestrates the driver assignment process.
// The selection policy is injected: the handler owns the workflow (locking,
// uniqueness, persistence) while the selector owns the choice of driver.
type AssignDriverCommandHandler struct {
	uowFactory DispatchUoWFactory
	selector   services.DriverSelector
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(
	uowFactory DispatchUoWFactory, selector services.DriverSelector,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		selector:   selector,
	}
}

// Handle processes the assignment command.
// Locks the order, verifies no unresolved assignment exists, asks the
// selector for one eligible driver, and records a Pending assignment. The
// partial unique index on unresolved assignments backs the application check
// against concurrent dispatchers.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.IsPaid() {
		return ErrOrderIsNotPaid
	}

	assignmentRepo := uow.AssignmentRepository()

	_, err = assignmentRepo.GetUnresolvedByOrder(ctx, cmd.OrderID())
	if err == nil {
		return ErrOrderAlreadyAssigned
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	candidates, err := uow.DriverRepository().GetAllEligible(ctx)
	if err != nil {
		return err
	}

	selected, err := h.selector.Select(aggregate, candidates)
	if err != nil {
		return err
	}

	offer, err := assignment.NewAssignment(kernel.NewUUID(), aggregate.ID(), selected.ID())
	if err != nil {
		return err
	}

	if err = assignmentRepo.Add(ctx, offer); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
