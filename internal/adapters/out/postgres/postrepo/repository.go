package postrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/post"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPostRepository implements PostRepository using GORM.
type GormPostRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPostRepository creates a new GORM post repository.
func NewGormPostRepository(db *gorm.DB, tracker aggregateTracker) *GormPostRepository {
	return &GormPostRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new post to the database.
func (r *GormPostRepository) Add(ctx context.Context, aggregate *post.Post) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("post already exists", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// postColumns lists the mutable post columns written on Update.
var postColumns = []string{"title", "points", "available"}

// Update saves an existing post to the database.
func (r *GormPostRepository) Update(ctx context.Context, aggregate *post.Post) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PostDTO{}).
		Where("id = ?", dto.ID).
		Select(postColumns).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetForUpdate retrieves a post and locks its row until the surrounding
// transaction completes.
func (r *GormPostRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*post.Post, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PostDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("post", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
