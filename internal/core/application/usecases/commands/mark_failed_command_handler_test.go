package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkFailedCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	record := newAssignedDelivery(t, orderID, driverID)
	cmd, _ := commands.NewMarkFailedCommand(orderID, driverID, "customer unreachable")

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetByOrderForUpdate", mock.Anything, orderID).Return(record, nil).Once(),
		deliveryRepo.On("AddFailure", mock.Anything, mock.AnythingOfType("*delivery.FailedDelivery")).
			Run(func(args mock.Arguments) {
				entry := args.Get(1).(*delivery.FailedDelivery)
				assert.Equal(t, orderID, entry.OrderID())
				assert.Equal(t, driverID, entry.DriverID())
				assert.Equal(t, "customer unreachable", entry.Reason())
			}).Return(nil).Once(),
		deliveryRepo.On("Update", mock.Anything, record).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkFailedCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, delivery.Failed, record.Status())
	deliveryRepo.AssertExpectations(t)
}

func TestMarkFailedCommandHandler_Handle_DeliveredDelivery(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	record := newAssignedDelivery(t, orderID, driverID)
	require.NoError(t, record.MarkPickedUp())
	require.NoError(t, record.MarkDelivered("sig"))
	cmd, _ := commands.NewMarkFailedCommand(orderID, driverID, "late")

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetByOrderForUpdate", mock.Anything, orderID).Return(record, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkFailedCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, delivery.ErrStatusConflict)
	deliveryRepo.AssertNotCalled(t, "AddFailure", mock.Anything, mock.Anything)
	assert.Equal(t, delivery.Delivered, record.Status())
}

func TestMarkFailedCommandHandler_Handle_LogInsertFailureRollsBack(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	record := newAssignedDelivery(t, orderID, driverID)
	cmd, _ := commands.NewMarkFailedCommand(orderID, driverID, "vehicle breakdown")

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetByOrderForUpdate", mock.Anything, orderID).Return(record, nil).Once(),
		deliveryRepo.On("AddFailure", mock.Anything, mock.AnythingOfType("*delivery.FailedDelivery")).
			Return(errors.New("insert error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkFailedCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewMarkFailedCommand_EmptyReason(t *testing.T) {
	_, err := commands.NewMarkFailedCommand(kernel.NewUUID(), kernel.NewUUID(), "")
	require.Error(t, err)
}
