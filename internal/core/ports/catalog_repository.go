package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
)

// CatalogRepository defines the read contract the fulfillment core needs
// from the food catalog: resolving a food so its sale price can be
// snapshotted onto an order line.
type CatalogRepository interface {
	// Get retrieves a food by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Food, error)

	// Add persists a new food.
	Add(ctx context.Context, aggregate *catalog.Food) error
}
