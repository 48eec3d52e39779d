package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

// ConfirmPaymentCommandHandler applies the payment gateway hand-off.
// The order flips to paid/Processed and its fulfillment record is opened as a
// Pending delivery, both in one transaction.
type ConfirmPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	cache      ports.EntityCache
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmation.
func NewConfirmPaymentCommandHandler(
	uowFactory PaymentUoWFactory, cache ports.EntityCache,
) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle processes the payment confirmation command.
// An already-paid order fails with a conflict; the one-delivery-per-order
// constraint in the store backs the application check.
func (h ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ConfirmPayment(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	fulfillmentRecord, err := delivery.NewDelivery(kernel.NewUUID(), aggregate.ID())
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, fulfillmentRecord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.cache.Invalidate(ctx, ports.OrderCacheKey(cmd.OrderID()))
	return nil
}
