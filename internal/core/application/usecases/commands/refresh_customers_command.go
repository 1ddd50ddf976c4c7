package commands

import (
	"errors"

	"bakery/internal/pkg/guard"
)

var ErrRefreshCustomersCommandIsNotConstructed = errors.New(
	"RefreshCustomersCommand must be created via NewRefreshCustomersCommand constructor",
)

// RefreshCustomersCommand rebuilds customer summaries from all orders.
// It is issued periodically by the customer summary job and on demand by
// the admin CLI.
type RefreshCustomersCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshCustomersCommand creates the command.
func NewRefreshCustomersCommand() RefreshCustomersCommand {
	return RefreshCustomersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c RefreshCustomersCommand) Validate() error {
	return c.guard.Validate(ErrRefreshCustomersCommandIsNotConstructed)
}
