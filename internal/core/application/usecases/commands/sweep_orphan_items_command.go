package commands

import (
	"errors"

	"skate/internal/pkg/guard"
)

var ErrSweepOrphanItemsCommandIsNotConstructed = errors.New(
	"SweepOrphanItemsCommand must be created via NewSweepOrphanItemsCommand constructor",
)

// SweepOrphanItemsCommand removes item rows that no longer belong to any order.
// Such rows can only appear from writes made outside a transaction, so the
// sweep normally finds nothing.
//
// Example:
//
//	cmd := NewSweepOrphanItemsCommand()
//	handler := NewSweepOrphanItemsCommandHandler(uowFactory)
//
//	removed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Orphan sweep failed: %v", err)
//	}
type SweepOrphanItemsCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepOrphanItemsCommand creates a parameterless sweep command.
func NewSweepOrphanItemsCommand() SweepOrphanItemsCommand {
	return SweepOrphanItemsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *SweepOrphanItemsCommand) Validate() error {
	return c.guard.Validate(ErrSweepOrphanItemsCommandIsNotConstructed)
}
