package commands

import (
	"context"

	"foodrush/internal/core/domain/model/order"
)

// AssignDriverCommandHandler attaches a driver to an order and marks the
// driver busy. Both writes happen inside one unit of work so the order and
// driver never disagree about the assignment.
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(uowFactory UoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the order and driver, performs the assignment, and persists
// both aggregates atomically. The order moves to the assigned status
// regardless of where it was in the lifecycle.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()

	orderAggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	driverAggregate, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	driverName := cmd.DriverNameOverride()
	if driverName == "" {
		driverName = driverAggregate.Name()
	}

	if err = orderAggregate.AssignDriver(cmd.DriverID(), driverName); err != nil {
		return nil, err
	}
	driverAggregate.MarkBusy()

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return nil, err
	}

	if err = driverRepo.Update(ctx, driverAggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return orderAggregate, nil
}
