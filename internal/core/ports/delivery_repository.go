package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for deliveries and the
// append-only failure log. The store enforces one delivery per order through
// a unique constraint.
type DeliveryRepository interface {
	// Add persists a new delivery. Fails with a conflict when a delivery
	// already exists for the order.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// GetByOrder retrieves the order's delivery.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// GetByOrderForUpdate retrieves the order's delivery and locks its row
	// for the duration of the current transaction.
	GetByOrderForUpdate(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// AddFailure appends a failed-delivery log entry. Entries are historical
	// records; they are never updated or deleted.
	AddFailure(ctx context.Context, entry *delivery.FailedDelivery) error
}
