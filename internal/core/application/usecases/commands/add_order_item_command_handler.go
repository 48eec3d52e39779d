package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderAlreadyPaid is returned when attaching an item to an order whose
// payment has already been confirmed. The amount is settled at payment time
// and cannot change afterwards.
var ErrOrderAlreadyPaid = errs.NewConflictError("cannot add items to a paid order")

// AddOrderItemCommandHandler attaches catalog foods to orders.
// The item insert and the amount recompute happen in one transaction against
// a row-locked order, so concurrent appends cannot produce a stale amount.
type AddOrderItemCommandHandler struct {
	uowFactory CatalogOrderUoWFactory
	cache      ports.EntityCache
}

// NewAddOrderItemCommandHandler creates a handler for item attachment.
func NewAddOrderItemCommandHandler(
	uowFactory CatalogOrderUoWFactory, cache ports.EntityCache,
) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle processes the item attachment command.
// Snapshots the food's sale price onto the new line; a food without a sale
// price fails the command. The cached order read model is invalidated after
// commit; a failed invalidation leaves a stale entry until its TTL expires.
func (h AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
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

	if aggregate.IsPaid() {
		return ErrOrderAlreadyPaid
	}

	food, err := uow.CatalogRepository().Get(ctx, cmd.FoodID())
	if err != nil {
		return err
	}

	price, err := food.SalePrice()
	if err != nil {
		return err
	}

	item, err := order.NewItem(
		kernel.NewUUID(), aggregate.ID(), food.ID(), food.Name(), price, cmd.Quantity(),
	)
	if err != nil {
		return err
	}

	if err = aggregate.AddItem(item); err != nil {
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
