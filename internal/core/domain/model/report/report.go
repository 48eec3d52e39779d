// Package report provides the Report aggregate and the abuse throttle rules
// over reportable entities (orders and posts).
//
// Key business rules:
//   - At most one report per (target, reporting user); a second report by the
//     same user against the same target is a conflict.
//   - The report priority is a snapshot derived from the target's durability
//     points at report time and is never recomputed retroactively.
//   - Each successful report decrements the target's points by one; the
//     consequence and the report insert form one atomic unit.
package report

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Domain errors for report operations.
var (
	// ErrReportIsNotConstructed is returned when a Report was not created
	// through a constructor.
	ErrReportIsNotConstructed = errors.New("Report must be created via NewReport constructor")
	// ErrDuplicateReport is returned when a user reports the same target a
	// second time.
	ErrDuplicateReport = errs.NewConflictError("target already reported by this user")
)

// Kind discriminates the reportable target union.
type Kind string

const (
	// KindOrder targets an order.
	KindOrder Kind = "order"
	// KindPost targets a blog post.
	KindPost Kind = "post"
)

// Validate checks the kind against the known set of reportable entities.
func (k Kind) Validate() error {
	switch k {
	case KindOrder, KindPost:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not reportable", string(k)))
	}
}

// Target identifies a reportable entity as a tagged union instead of a
// generic foreign key, so every kind is handled exhaustively.
type Target struct {
	Kind Kind
	ID   kernel.UUID
}

// NewTarget creates a validated reportable target reference.
func NewTarget(kind Kind, id kernel.UUID) (Target, error) {
	if err := errors.Join(
		kind.Validate(),
		id.Validate(),
	); err != nil {
		return Target{}, err
	}
	return Target{Kind: kind, ID: id}, nil
}

// Validate checks both components of the target reference.
func (t Target) Validate() error {
	return errors.Join(
		t.Kind.Validate(),
		t.ID.Validate(),
	)
}

// Priority is the triage tier of a report, derived from the target's
// durability points at report time.
type Priority string

const (
	// Urgent is assigned when the target is nearly exhausted (points ≤ 25).
	Urgent Priority = "urgent"
	// High is assigned for points ≤ 50.
	High Priority = "high"
	// Medium is assigned for points ≤ 75.
	Medium Priority = "medium"
	// Low is assigned for healthy targets (points > 75).
	Low Priority = "low"
)

// DerivePriority maps a durability counter to a triage tier. Pure function;
// called at report-creation time only. The result is stored as a snapshot
// and never recomputed when the counter changes later.
func DerivePriority(points int) Priority {
	switch {
	case points <= 25:
		return Urgent
	case points <= 50:
		return High
	case points <= 75:
		return Medium
	default:
		return Low
	}
}

// Report records one user's complaint against one reportable target.
type Report struct {
	id         kernel.UUID
	target     Target
	reporterID kernel.UUID
	reason     string
	priority   Priority
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewReport creates a report against a target, deriving the priority
// snapshot from the target's current durability points. The reason is
// required.
func NewReport(id kernel.UUID, target Target, reporterID kernel.UUID, reason string, points int) (*Report, error) {
	if err := errors.Join(
		id.Validate(),
		target.Validate(),
		reporterID.Validate(),
	); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}

	return &Report{
		id:         id,
		target:     target,
		reporterID: reporterID,
		reason:     reason,
		priority:   DerivePriority(points),
		createdAt:  time.Now().UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreReport reconstructs a Report from persistent storage, preserving
// the stored priority snapshot.
func RestoreReport(
	id kernel.UUID, target Target, reporterID kernel.UUID,
	reason string, priority Priority, createdAt time.Time,
) (*Report, error) {
	if err := errors.Join(
		id.Validate(),
		target.Validate(),
		reporterID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Report{
		id:         id,
		target:     target,
		reporterID: reporterID,
		reason:     reason,
		priority:   priority,
		createdAt:  createdAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Report was created through a constructor.
func (r *Report) Validate() error {
	if r == nil {
		return ErrReportIsNotConstructed
	}
	return r.guard.Validate(ErrReportIsNotConstructed)
}

// ID returns the report's unique identifier.
func (r *Report) ID() kernel.UUID {
	return r.id
}

// Target returns the reported entity reference.
func (r *Report) Target() Target {
	return r.target
}

// ReporterID returns the reporting user's identifier.
func (r *Report) ReporterID() kernel.UUID {
	return r.reporterID
}

// Reason returns the complaint text.
func (r *Report) Reason() string {
	return r.reason
}

// Priority returns the triage tier snapshot taken at creation.
func (r *Report) Priority() Priority {
	return r.priority
}

// CreatedAt returns when the report was filed.
func (r *Report) CreatedAt() time.Time {
	return r.createdAt
}
