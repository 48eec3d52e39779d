package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// EntityCache is a read-through cache collaborator keyed by entity. Query
// handlers may populate it; every mutation to an entity invalidates the
// corresponding key. The cache is infrastructure beside the state machine,
// never part of it: a cache failure degrades to a database read.
type EntityCache interface {
	// Get returns the cached payload for a key, or (nil, nil) on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a payload under a key with a TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Invalidate removes keys after a mutation.
	Invalidate(ctx context.Context, keys ...string) error
}

// OrderCacheKey is the cache key for a single order read model. Command
// handlers invalidate it on every order mutation; the order query populates
// it.
func OrderCacheKey(orderID kernel.UUID) string {
	return "order:" + orderID.String()
}
