package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAssignedDelivery(t *testing.T, orderID, driverID kernel.UUID) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), orderID)
	require.NoError(t, err)
	require.NoError(t, d.AssignDriver(driverID))
	return d
}

func TestMarkPickedUpCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newPaidOrder(t)
	driverID := kernel.NewUUID()
	record := newAssignedDelivery(t, aggregate.ID(), driverID)
	cmd, _ := commands.NewMarkPickedUpCommand(aggregate.ID(), driverID)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockShippingUoW)
	cache := new(MockEntityCache)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetByOrderForUpdate", mock.Anything, aggregate.ID()).
			Return(record, nil).Once(),
		deliveryRepo.On("Update", mock.Anything, record).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		cache.On("Invalidate", ctx, ports.OrderCacheKey(aggregate.ID())).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShippingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkPickedUpCommandHandler(factory, cache)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, delivery.PickedUp, record.Status())
	assert.NotNil(t, record.PickedUpAt())
	assert.Equal(t, order.Shipping, aggregate.Status())
	deliveryRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestMarkPickedUpCommandHandler_Handle_AlreadyPickedUp(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	record := newAssignedDelivery(t, orderID, driverID)
	require.NoError(t, record.MarkPickedUp())
	cmd, _ := commands.NewMarkPickedUpCommand(orderID, driverID)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockShippingUoW)
	cache := new(MockEntityCache)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetByOrderForUpdate", mock.Anything, orderID).Return(record, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShippingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkPickedUpCommandHandler(factory, cache)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, delivery.ErrAlreadyPickedUp)
	deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMarkPickedUpCommandHandler_Handle_WrongDriver(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	record := newAssignedDelivery(t, orderID, kernel.NewUUID())
	cmd, _ := commands.NewMarkPickedUpCommand(orderID, kernel.NewUUID())

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockShippingUoW)
	cache := new(MockEntityCache)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetByOrderForUpdate", mock.Anything, orderID).Return(record, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShippingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkPickedUpCommandHandler(factory, cache)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeliveryNotFound)
}

func TestMarkPickedUpCommandHandler_Handle_PendingDelivery(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	record, err := delivery.NewDelivery(kernel.NewUUID(), orderID)
	require.NoError(t, err)
	cmd, _ := commands.NewMarkPickedUpCommand(orderID, driverID)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockShippingUoW)
	cache := new(MockEntityCache)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetByOrderForUpdate", mock.Anything, orderID).Return(record, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShippingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkPickedUpCommandHandler(factory, cache)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	// no driver on a pending delivery, so the pair cannot match
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
