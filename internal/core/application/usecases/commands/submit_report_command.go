package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/report"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrSubmitReportCommandIsNotConstructed is returned when the command was not
// built through NewSubmitReportCommand.
var ErrSubmitReportCommandIsNotConstructed = errors.New(
	"SubmitReportCommand must be created via NewSubmitReportCommand constructor",
)

// SubmitReportCommand represents a user reporting an order or a post.
type SubmitReportCommand struct { //nolint:recvcheck //using for validation
	target     report.Target
	reporterID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewSubmitReportCommand creates a command to report a target entity.
// The target kind must be reportable and the reason is required.
func NewSubmitReportCommand(
	kind report.Kind, targetID, reporterID kernel.UUID, reason string,
) (SubmitReportCommand, error) {
	cmd := SubmitReportCommand{
		guard: guard.NewConstructorGuard(),
	}

	target, targetErr := report.NewTarget(kind, targetID)
	if err := errors.Join(
		targetErr,
		cmd.setReporterID(reporterID),
		cmd.setReason(reason),
	); err != nil {
		return SubmitReportCommand{}, err
	}

	cmd.target = target
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitReportCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReportCommandIsNotConstructed)
}

// Target returns the reported entity reference.
func (c SubmitReportCommand) Target() report.Target {
	return c.target
}

// ReporterID returns the reporting user's identifier.
func (c SubmitReportCommand) ReporterID() kernel.UUID {
	return c.reporterID
}

// Reason returns the complaint text.
func (c SubmitReportCommand) Reason() string {
	return c.reason
}

func (c *SubmitReportCommand) setReporterID(reporterID kernel.UUID) error {
	if err := reporterID.Validate(); err != nil {
		return err
	}

	c.reporterID = reporterID
	return nil
}

func (c *SubmitReportCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
