package commands

import (
	"errors"

	"foodrush/internal/pkg/guard"
)

var ErrReleaseDriversCommandIsNotConstructed = errors.New(
	"ReleaseDriversCommand must be created via NewReleaseDriversCommand constructor",
)

// ReleaseDriversCommand represents a request to free busy drivers that no
// longer hold an active order. It carries no parameters; the handler decides
// which drivers qualify.
type ReleaseDriversCommand struct {
	guard guard.ConstructorGuard
}

// NewReleaseDriversCommand creates a validated release command.
func NewReleaseDriversCommand() ReleaseDriversCommand {
	return ReleaseDriversCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ReleaseDriversCommand) Validate() error {
	return c.guard.Validate(ErrReleaseDriversCommandIsNotConstructed)
}
