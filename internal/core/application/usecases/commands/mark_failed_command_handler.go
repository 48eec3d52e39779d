package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// MarkFailedCommandHandler records delivery failures.
// Exactly one failure log entry is appended and the status flips to Failed
// in the same transaction; the log and the status never diverge. The order
// itself is left untouched for manual resolution.
type MarkFailedCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewMarkFailedCommandHandler creates a handler for failure recording.
func NewMarkFailedCommandHandler(uowFactory DeliveryUoWFactory) MarkFailedCommandHandler {
	return MarkFailedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the failure command.
func (h MarkFailedCommandHandler) Handle(ctx context.Context, cmd MarkFailedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	record, err := deliveryRepo.GetByOrderForUpdate(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrDeliveryNotFound
	}
	if err != nil {
		return err
	}

	if !record.BelongsTo(cmd.DriverID()) {
		return ErrDeliveryNotFound
	}

	entry, err := record.MarkFailed(kernel.NewUUID(), cmd.Reason())
	if err != nil {
		return err
	}

	if err = deliveryRepo.AddFailure(ctx, entry); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
