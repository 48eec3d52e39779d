// Package ports defines the contracts between the domain layer and
// infrastructure: repositories, the unit of work, and the entity cache.
// These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored together with their line items.
type OrderRepository interface {
	// Add persists a new order aggregate, including its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// New items appended since the last load are inserted.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate and locks its row for the
	// duration of the current transaction. Used by every operation whose
	// state gating must not race with a concurrent writer.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPaidUnassigned retrieves paid orders that have no unresolved or
	// accepted assignment yet. Used by the dispatch job.
	GetAllPaidUnassigned(ctx context.Context) ([]*order.Order, error)
}
