package commands_test

import (
	"context"
	"errors"
	"testing"

	"foodrush/internal/core/application/usecases/commands"
	"foodrush/internal/core/domain/model/driver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReleaseDriversCommandHandler_Handle_ReleasesIdleDrivers(t *testing.T) {
	ctx := context.Background()
	cmd := commands.NewReleaseDriversCommand()

	idle := testDriver(t, 1, "Bob")
	idle.MarkBusy()
	working := testDriver(t, 2, "Carol")
	working.MarkBusy()

	driverRepo := new(MockDriverRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("GetAllBusy", ctx).Return([]*driver.Driver{idle, working}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetDriverIDsWithActiveOrders", ctx).Return([]int64{2}, nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReleaseDriversCommandHandler(factory)
	released, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, released)
	assert.Equal(t, driver.StatusAvailable, idle.Status())
	assert.Equal(t, driver.StatusBusy, working.Status())

	driverRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReleaseDriversCommandHandler_Handle_NoBusyDrivers(t *testing.T) {
	ctx := context.Background()
	cmd := commands.NewReleaseDriversCommand()

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("GetAllBusy", ctx).Return([]*driver.Driver{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReleaseDriversCommandHandler(factory)
	released, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, released)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestReleaseDriversCommandHandler_Handle_AllDriversStillWorking(t *testing.T) {
	ctx := context.Background()
	cmd := commands.NewReleaseDriversCommand()

	working := testDriver(t, 2, "Carol")
	working.MarkBusy()

	driverRepo := new(MockDriverRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("GetAllBusy", ctx).Return([]*driver.Driver{working}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetDriverIDsWithActiveOrders", ctx).Return([]int64{2}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReleaseDriversCommandHandler(factory)
	released, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, released)
	uow.AssertNotCalled(t, "Commit", ctx)
	driverRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestReleaseDriversCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.ReleaseDriversCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewReleaseDriversCommandHandler(factory)
	released, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrReleaseDriversCommandIsNotConstructed)
	assert.Zero(t, released)
	factory.AssertNotCalled(t, "Create")
}

func TestReleaseDriversCommandHandler_Handle_ActiveOrdersQueryError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.NewReleaseDriversCommand()

	busy := testDriver(t, 1, "Bob")
	busy.MarkBusy()

	driverRepo := new(MockDriverRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("GetAllBusy", ctx).Return([]*driver.Driver{busy}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetDriverIDsWithActiveOrders", ctx).
			Return(nil, errors.New("database error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReleaseDriversCommandHandler(factory)
	released, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
	assert.Zero(t, released)
}
