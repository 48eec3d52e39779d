// Package assignment provides the DriverAssignment aggregate: a proposed
// pairing of one driver to one order, pending the driver's response.
//
// Key business rules:
//   - At most one unresolved assignment may exist per order at a time;
//     offering a second one is blocked.
//   - Accepting or rejecting resolves the assignment and clears its
//     availability flag, so a resolved assignment can never be re-resolved.
//   - Rejection is not idempotent: rejecting an already-rejected assignment
//     is a conflict, not a no-op.
package assignment

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Domain errors for assignment transitions.
var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment was not
	// created through a constructor.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")
	// ErrAlreadyRejected is returned when rejecting an assignment that was
	// already rejected.
	ErrAlreadyRejected = errs.NewConflictError("assignment already rejected")
	// ErrAlreadyAccepted is returned when rejecting an assignment the driver
	// already accepted.
	ErrAlreadyAccepted = errs.NewConflictError("assignment already accepted")
	// ErrAssignmentResolved is returned when accepting an assignment that is
	// no longer pending.
	ErrAssignmentResolved = errs.NewConflictError("assignment already resolved")
)

// Assignment pairs one order with one driver and tracks the driver's
// response. The availability flag doubles as the resolution marker: it flips
// to false exactly when the assignment leaves Pending.
type Assignment struct {
	id        kernel.UUID
	orderID   kernel.UUID
	driverID  kernel.UUID
	status    Status
	available bool

	guard guard.ConstructorGuard
}

// NewAssignment offers an order to a driver. The assignment starts Pending
// and available; the caller is responsible for ensuring no other unresolved
// assignment exists for the order.
func NewAssignment(id, orderID, driverID kernel.UUID) (*Assignment, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		driverID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Assignment{
		id:        id,
		orderID:   orderID,
		driverID:  driverID,
		status:    Pending,
		available: true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreAssignment reconstructs an Assignment from persistent storage.
func RestoreAssignment(
	id, orderID, driverID kernel.UUID, status Status, available bool,
) (*Assignment, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		driverID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Assignment{
		id:        id,
		orderID:   orderID,
		driverID:  driverID,
		status:    status,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Assignment was created through a constructor.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// OrderID returns the offered order's identifier.
func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// DriverID returns the offered driver's identifier.
func (a *Assignment) DriverID() kernel.UUID {
	return a.driverID
}

// Status returns the driver's response state.
func (a *Assignment) Status() Status {
	return a.status
}

// IsAvailable reports whether the assignment is still unresolved.
func (a *Assignment) IsAvailable() bool {
	return a.available
}

// IsResolved reports whether the driver has responded.
func (a *Assignment) IsResolved() bool {
	return a.status.IsResolved()
}

// Accept records the driver taking the order. Valid only while Pending and
// unresolved; a resolved assignment can never be re-resolved, so the second
// accept of a pair is a conflict.
func (a *Assignment) Accept() error {
	if a.status != Pending || !a.available {
		return ErrAssignmentResolved
	}

	a.status = Accepted
	a.available = false
	return nil
}

// Reject records the driver declining the order. Rejecting twice is a
// conflict (ErrAlreadyRejected), not a no-op; rejecting an accepted
// assignment is likewise a conflict.
func (a *Assignment) Reject() error {
	switch a.status {
	case Rejected:
		return ErrAlreadyRejected
	case Accepted:
		return ErrAlreadyAccepted
	case Pending:
		a.status = Rejected
		a.available = false
		return nil
	default:
		return errs.NewInvalidStateError("assignment status is unknown")
	}
}
