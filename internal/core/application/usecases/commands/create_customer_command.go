package commands

import (
	"errors"

	"foodrush/internal/pkg/errs"
	"foodrush/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a new customer.
type CreateCustomerCommand struct {
	name      string
	addresses []string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a validated customer registration command.
// Addresses may be empty; customers can add delivery addresses later.
func NewCreateCustomerCommand(name string, addresses []string) (CreateCustomerCommand, error) {
	if name == "" {
		return CreateCustomerCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateCustomerCommand{
		name:      name,
		addresses: addresses,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// Name returns the customer's display name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Addresses returns the customer's known delivery addresses.
func (c CreateCustomerCommand) Addresses() []string {
	return c.addresses
}
