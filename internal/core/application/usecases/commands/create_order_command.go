package commands

import (
	"errors"

	"skate/internal/core/domain/model/order"
	"skate/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order.
// The order is validated when the command is built, so a constructed command
// always carries an aggregate that can be persisted.
//
// Example:
//
//	item, _ := order.NewItem(456, 2, 500, 1000)
//	cmd, err := NewCreateOrderCommand(123, order.Processing, "123 Main St", 1000, []order.Item{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	id, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	order *order.Order

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Returns the joined validation errors of the order fields if any are invalid.
func NewCreateOrderCommand(
	customerID int64,
	status order.Status,
	address string,
	price int64,
	items []order.Item,
) (CreateOrderCommand, error) {
	aggregate, err := order.NewOrder(customerID, status, address, price, items)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		order: aggregate,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Order returns the aggregate to persist.
func (c CreateOrderCommand) Order() *order.Order {
	return c.order
}
