package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ErrDeliveryNotFound is returned when no delivery exists for the
// (order, driver) pair.
var ErrDeliveryNotFound = errs.NewObjectNotFoundError(
	"delivery", "no delivery for order and driver",
)

// MarkPickedUpCommandHandler records a driver collecting an order.
// The delivery moves to PickedUp and the order starts Shipping in the same
// transaction.
type MarkPickedUpCommandHandler struct {
	uowFactory ShippingUoWFactory
	cache      ports.EntityCache
}

// NewMarkPickedUpCommandHandler creates a handler for pickup recording.
func NewMarkPickedUpCommandHandler(
	uowFactory ShippingUoWFactory, cache ports.EntityCache,
) MarkPickedUpCommandHandler {
	return MarkPickedUpCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle processes the pickup command.
// A delivery handled by a different driver reads as not found for the caller.
func (h MarkPickedUpCommandHandler) Handle(ctx context.Context, cmd MarkPickedUpCommand) error {
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

	if err = record.MarkPickedUp(); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, record); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.StartShipping(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.cache.Invalidate(ctx, ports.OrderCacheKey(cmd.OrderID()))
	return nil
}
