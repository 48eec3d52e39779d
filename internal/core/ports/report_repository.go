package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/report"
)

// ReportRepository defines the persistence contract for abuse reports.
// The store enforces at most one report per (target, reporter) through a
// unique index; Add surfaces a violation as a conflict.
type ReportRepository interface {
	// Add persists a new report.
	Add(ctx context.Context, aggregate *report.Report) error

	// Exists reports whether the user already reported the target.
	Exists(ctx context.Context, target report.Target, reporterID kernel.UUID) (bool, error)
}
