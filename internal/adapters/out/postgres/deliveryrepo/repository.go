package deliveryrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery. A delivery already existing for the order
// surfaces as a conflict through the unique index on order_id.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("order already has a delivery", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// deliveryColumns lists the mutable delivery columns written on Update.
var deliveryColumns = []string{
	"driver_id", "status", "signature",
	"picked_up_at", "delivered_at", "is_completed",
}

// Update saves an existing delivery to the database.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ?", dto.ID).
		Select(deliveryColumns).
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

// GetByOrder retrieves the order's delivery.
func (r *GormDeliveryRepository) GetByOrder(
	ctx context.Context, orderID kernel.UUID,
) (*delivery.Delivery, error) {
	return r.getByOrder(ctx, r.db, orderID)
}

// GetByOrderForUpdate retrieves the order's delivery and locks its row until
// the surrounding transaction completes.
func (r *GormDeliveryRepository) GetByOrderForUpdate(
	ctx context.Context, orderID kernel.UUID,
) (*delivery.Delivery, error) {
	return r.getByOrder(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), orderID)
}

func (r *GormDeliveryRepository) getByOrder(
	ctx context.Context, db *gorm.DB, orderID kernel.UUID,
) (*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	err := db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddFailure appends a failure log entry. Entries are never updated or
// deleted.
func (r *GormDeliveryRepository) AddFailure(
	ctx context.Context, entry *delivery.FailedDelivery,
) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := failureFromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}
