// Package postrepo provides data transfer objects and mapping functions for
// blog post persistence. Posts only participate in fulfillment as reportable
// entities, so the stored shape is minimal.
package postrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/post"

	"github.com/google/uuid"
)

// PostDTO represents the database structure for persisting posts.
type PostDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AuthorID  uuid.UUID `gorm:"type:uuid;index"`
	Title     string
	Points    int
	Available bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for post entities.
func (PostDTO) TableName() string {
	return "posts"
}

// fromDomain converts a post domain aggregate to its database
// representation.
func fromDomain(aggregate *post.Post) PostDTO {
	return PostDTO{
		ID:        aggregate.ID().Bytes(),
		AuthorID:  aggregate.AuthorID().Bytes(),
		Title:     aggregate.Title(),
		Points:    aggregate.Points(),
		Available: aggregate.IsAvailable(),
	}
}

// toDomain converts a database DTO to a post domain aggregate.
func toDomain(dto PostDTO) (*post.Post, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	authorID, err := kernel.UUIDFromBytes(dto.AuthorID[:])
	if err != nil {
		return nil, err
	}

	return post.RestorePost(id, authorID, dto.Title, dto.Points, dto.Available)
}
