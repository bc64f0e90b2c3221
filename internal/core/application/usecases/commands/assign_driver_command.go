package commands

import (
	"errors"

	"foodrush/internal/pkg/errs"
	"foodrush/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a request to attach a driver to an order.
// An optional display name overrides the driver's stored name on the order.
type AssignDriverCommand struct {
	orderID            int64
	driverID           int64
	driverNameOverride string

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a validated driver assignment command.
func NewAssignDriverCommand(orderID int64, driverID int64, driverNameOverride string) (AssignDriverCommand, error) {
	if orderID <= 0 {
		return AssignDriverCommand{}, errs.NewValueIsRequiredError("orderID")
	}
	if driverID <= 0 {
		return AssignDriverCommand{}, errs.NewValueIsRequiredError("driverID")
	}

	return AssignDriverCommand{
		orderID:            orderID,
		driverID:           driverID,
		driverNameOverride: driverNameOverride,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// OrderID returns the identifier of the order receiving the driver.
func (c AssignDriverCommand) OrderID() int64 {
	return c.orderID
}

// DriverID returns the identifier of the driver to assign.
func (c AssignDriverCommand) DriverID() int64 {
	return c.driverID
}

// DriverNameOverride returns the optional display name for the order.
// Empty means the driver's stored name is used.
func (c AssignDriverCommand) DriverNameOverride() string {
	return c.driverNameOverride
}
