// Package reportrepo provides data transfer objects and mapping functions
// for abuse report persistence. A composite unique index on (target kind,
// target id, reporter) makes duplicate reports impossible at the storage
// level, backing up the handler's existence check.
package reportrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/report"

	"github.com/google/uuid"
)

// ReportDTO represents the database structure for persisting reports.
type ReportDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TargetKind string    `gorm:"uniqueIndex:idx_reports_target_reporter"`
	TargetID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reports_target_reporter"`
	ReporterID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reports_target_reporter"`
	Reason     string
	Priority   string `gorm:"index"`
	CreatedAt  time.Time
}

// TableName specifies the database table name for report entities.
func (ReportDTO) TableName() string {
	return "reports"
}

// fromDomain converts a report domain aggregate to its database
// representation.
func fromDomain(aggregate *report.Report) ReportDTO {
	return ReportDTO{
		ID:         aggregate.ID().Bytes(),
		TargetKind: string(aggregate.Target().Kind),
		TargetID:   aggregate.Target().ID.Bytes(),
		ReporterID: aggregate.ReporterID().Bytes(),
		Reason:     aggregate.Reason(),
		Priority:   string(aggregate.Priority()),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a report domain aggregate, preserving
// the stored priority snapshot.
func toDomain(dto ReportDTO) (*report.Report, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	targetID, err := kernel.UUIDFromBytes(dto.TargetID[:])
	if err != nil {
		return nil, err
	}

	reporterID, err := kernel.UUIDFromBytes(dto.ReporterID[:])
	if err != nil {
		return nil, err
	}

	target, err := report.NewTarget(report.Kind(dto.TargetKind), targetID)
	if err != nil {
		return nil, err
	}

	return report.RestoreReport(
		id, target, reporterID, dto.Reason, report.Priority(dto.Priority), dto.CreatedAt,
	)
}
