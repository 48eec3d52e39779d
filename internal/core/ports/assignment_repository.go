package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for driver
// assignments. The store enforces at most one unresolved assignment per
// order through a partial unique index; Add surfaces a violation as a
// conflict.
type AssignmentRepository interface {
	// Add persists a new assignment. Fails with a conflict when an
	// unresolved assignment already exists for the order.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists changes to an existing assignment.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// GetUnresolvedByOrder retrieves the order's single unresolved
	// assignment, if any.
	GetUnresolvedByOrder(ctx context.Context, orderID kernel.UUID) (*assignment.Assignment, error)

	// GetByOrderAndDriverForUpdate retrieves the latest assignment for the
	// pair and locks its row for the duration of the current transaction,
	// so concurrent accept/reject calls serialize on the same row.
	GetByOrderAndDriverForUpdate(
		ctx context.Context, orderID, driverID kernel.UUID,
	) (*assignment.Assignment, error)
}
