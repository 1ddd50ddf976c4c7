package commands

import (
	"errors"

	"bakery/internal/pkg/guard"
)

var ErrToggleStoreStatusCommandIsNotConstructed = errors.New(
	"ToggleStoreStatusCommand must be created via NewToggleStoreStatusCommand constructor",
)

// ToggleStoreStatusCommand opens a closed store or closes an open one.
// This is a parameterless command.
type ToggleStoreStatusCommand struct {
	guard guard.ConstructorGuard
}

// NewToggleStoreStatusCommand creates the command.
func NewToggleStoreStatusCommand() ToggleStoreStatusCommand {
	return ToggleStoreStatusCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ToggleStoreStatusCommand) Validate() error {
	return c.guard.Validate(ErrToggleStoreStatusCommandIsNotConstructed)
}
