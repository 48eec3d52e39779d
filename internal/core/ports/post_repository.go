package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/post"
)

// PostRepository defines the persistence contract for blog posts as
// reportable entities.
type PostRepository interface {
	// Add persists a new post.
	Add(ctx context.Context, aggregate *post.Post) error

	// Update persists changes to an existing post.
	Update(ctx context.Context, aggregate *post.Post) error

	// GetForUpdate retrieves a post and locks its row for the duration of
	// the current transaction. Used when applying report consequences.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*post.Post, error)
}
