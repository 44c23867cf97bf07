package commands

import (
	"errors"

	"skate/internal/core/domain/model/order"
	"skate/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand replaces the header fields and the items of an existing order.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	order   *order.Order

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command that overwrites order orderID with the given values.
// The identifier is not checked here; an unknown identifier is reported by the handler.
func NewUpdateOrderCommand(
	orderID int64,
	customerID int64,
	status order.Status,
	address string,
	price int64,
	items []order.Item,
) (UpdateOrderCommand, error) {
	aggregate, err := order.NewOrder(customerID, status, address, price, items)
	if err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		orderID: orderID,
		order:   aggregate,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// Order returns the new state of the order.
func (c UpdateOrderCommand) Order() *order.Order {
	return c.order
}
