package reportrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/report"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReportRepository implements ReportRepository using GORM.
type GormReportRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReportRepository creates a new GORM report repository.
func NewGormReportRepository(db *gorm.DB, tracker aggregateTracker) *GormReportRepository {
	return &GormReportRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new report. A second report from the same user against the
// same target surfaces as a conflict through the composite unique index.
func (r *GormReportRepository) Add(ctx context.Context, aggregate *report.Report) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("target already reported by this user", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Exists reports whether the user already reported the target.
func (r *GormReportRepository) Exists(
	ctx context.Context, target report.Target, reporterID kernel.UUID,
) (bool, error) {
	if err := errors.Join(target.Validate(), reporterID.Validate()); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ReportDTO{}).
		Where(
			"target_kind = ? AND target_id = ? AND reporter_id = ?",
			string(target.Kind), target.ID.Bytes(), reporterID.Bytes(),
		).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
