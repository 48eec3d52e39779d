package assignmentrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// pendingAssignmentIndexDDL limits each order to one unresolved assignment.
// Postgres rejects bind parameters in DDL statements, so the status constant
// is inlined into the literal.
var pendingAssignmentIndexDDL = fmt.Sprintf(`
	CREATE UNIQUE INDEX IF NOT EXISTS idx_assignments_one_pending_per_order
	ON assignments (order_id)
	WHERE status = %d`, assignment.Pending)

// Migrate creates the partial unique index that limits each order to one
// unresolved assignment. AutoMigrate cannot express partial indexes, so the
// composition root calls this after migrating the DTOs.
func Migrate(db *gorm.DB) error {
	return db.Exec(pendingAssignmentIndexDDL).Error
}

// Add saves a new assignment. A pending assignment already existing for the
// order surfaces as a conflict through the partial unique index.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause(
				"order already has a pending assignment", err,
			)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// assignmentColumns lists the mutable assignment columns written on Update.
var assignmentColumns = []string{"status", "available"}

// Update saves an existing assignment to the database.
func (r *GormAssignmentRepository) Update(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("id = ?", dto.ID).
		Select(assignmentColumns).
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

// GetUnresolvedByOrder retrieves the order's single pending assignment.
func (r *GormAssignmentRepository) GetUnresolvedByOrder(
	ctx context.Context, orderID kernel.UUID,
) (*assignment.Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND status = ?", orderID.Bytes(), int(assignment.Pending)).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderAndDriverForUpdate retrieves the latest assignment for the pair
// and locks its row until the surrounding transaction completes.
func (r *GormAssignmentRepository) GetByOrderAndDriverForUpdate(
	ctx context.Context, orderID, driverID kernel.UUID,
) (*assignment.Assignment, error) {
	if err := errors.Join(orderID.Validate(), driverID.Validate()); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "order_id = ? AND driver_id = ?", orderID.Bytes(), driverID.Bytes()).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
