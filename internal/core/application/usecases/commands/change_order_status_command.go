package commands

import (
	"errors"

	"foodrush/internal/core/domain/model/order"
	"foodrush/internal/pkg/errs"
	"foodrush/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// lifecycle status.
type ChangeOrderStatusCommand struct {
	orderID   int64
	newStatus order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a validated status change command.
func NewChangeOrderStatusCommand(orderID int64, newStatus order.Status) (ChangeOrderStatusCommand, error) {
	if orderID <= 0 {
		return ChangeOrderStatusCommand{}, errs.NewValueIsRequiredError("orderID")
	}
	if err := newStatus.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID:   orderID,
		newStatus: newStatus,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

// NewStatus returns the target lifecycle status.
func (c ChangeOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}
