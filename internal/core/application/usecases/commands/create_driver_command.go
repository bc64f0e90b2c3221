package commands

import (
	"errors"

	"foodrush/internal/pkg/errs"
	"foodrush/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents a request to register a new driver.
type CreateDriverCommand struct {
	name string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a validated driver registration command.
func NewCreateDriverCommand(name string) (CreateDriverCommand, error) {
	if name == "" {
		return CreateDriverCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateDriverCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// Name returns the driver's display name.
func (c CreateDriverCommand) Name() string {
	return c.name
}
