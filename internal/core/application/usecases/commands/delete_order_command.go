package commands

import (
	"errors"

	"skate/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes an order together with its items.
type DeleteOrderCommand struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(orderID int64) DeleteOrderCommand {
	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) OrderID() int64 {
	return c.orderID
}
