package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodrush/internal/core/application/usecases/commands"
	"foodrush/internal/core/domain/model/driver"
	"foodrush/internal/core/domain/model/order"
	"foodrush/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testStoredOrder(t *testing.T, id int64, status order.Status) *order.Order {
	t.Helper()

	item, err := order.NewLineItem("Burger", 8.0, 1, 8.0)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		id, 1, 2, nil,
		[]order.LineItem{item}, 8.0, status,
		"Alice", "Burger Barn", "",
		"12 Main St", nil,
		time.Now().UTC().Add(-time.Hour),
		nil, nil, nil, nil, nil,
	)
	require.NoError(t, err)
	return o
}

func TestAssignDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewAssignDriverCommand(10, 7, "")
	require.NoError(t, err)

	testOrder := testStoredOrder(t, 10, order.StatusNew)
	busyCandidate := testDriver(t, 7, "Bob")

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, int64(10)).Return(testOrder, nil).Once(),
		driverRepo.On("Get", ctx, int64(7)).Return(busyCandidate, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, order.StatusAssigned, updated.Status())
	require.NotNil(t, updated.DriverID())
	assert.Equal(t, int64(7), *updated.DriverID())
	assert.Equal(t, "Bob", updated.DriverName())
	assert.Equal(t, driver.StatusBusy, busyCandidate.Status())

	orderRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_ForcesAssignedFromLateStatus(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewAssignDriverCommand(10, 7, "Bobby")
	require.NoError(t, err)

	testOrder := testStoredOrder(t, 10, order.StatusInTransit)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, int64(10)).Return(testOrder, nil).Once(),
		driverRepo.On("Get", ctx, int64(7)).Return(testDriver(t, 7, "Bob"), nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusAssigned, updated.Status())
	assert.Equal(t, "Bobby", updated.DriverName())
}

func TestAssignDriverCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.AssignDriverCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewAssignDriverCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAssignDriverCommandIsNotConstructed)
	assert.Nil(t, updated)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignDriverCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewAssignDriverCommand(404, 7, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, int64(404)).
			Return(nil, errs.NewObjectNotFoundError("orderID", int64(404))).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, updated)
}

func TestAssignDriverCommandHandler_Handle_DriverNotFound(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewAssignDriverCommand(10, 404, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, int64(10)).Return(testStoredOrder(t, 10, order.StatusNew), nil).Once(),
		driverRepo.On("Get", ctx, int64(404)).
			Return(nil, errs.NewObjectNotFoundError("driverID", int64(404))).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, updated)
}

func TestAssignDriverCommandHandler_Handle_UpdateOrderError(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewAssignDriverCommand(10, 7, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, int64(10)).Return(testStoredOrder(t, 10, order.StatusNew), nil).Once(),
		driverRepo.On("Get", ctx, int64(7)).Return(testDriver(t, 7, "Bob"), nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).
			Return(errors.New("update error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "update error")
	assert.Nil(t, updated)
}

func TestAssignDriverCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewAssignDriverCommand(10, 7, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, int64(10)).Return(testStoredOrder(t, 10, order.StatusNew), nil).Once(),
		driverRepo.On("Get", ctx, int64(7)).Return(testDriver(t, 7, "Bob"), nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
	assert.Nil(t, updated)
}
