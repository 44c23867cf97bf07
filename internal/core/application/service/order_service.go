// Package service exposes the order use cases to the transport layer as one facade.
// It adds no behaviour of its own: inputs become commands or queries, and errors
// from the handlers are returned unchanged.
package service

import (
	"context"

	"skate/internal/core/application/usecases/commands"
	"skate/internal/core/application/usecases/queries"
	"skate/internal/core/domain/model/order"
)

// OrderFields are the caller-supplied values of an order.
type OrderFields struct {
	CustomerID int64
	Status     order.Status
	Address    string
	Price      int64
	Items      []order.Item
}

// ListFilter narrows ListOrders. A nil CustomerID lists every order.
type ListFilter struct {
	CustomerID *int64
}

type OrderService struct {
	createHandler commands.CreateOrderCommandHandler
	updateHandler commands.UpdateOrderCommandHandler
	deleteHandler commands.DeleteOrderCommandHandler
	getHandler    queries.GetOrderQueryHandler
	listHandler   queries.ListOrdersQueryHandler
}

func NewOrderService(
	createHandler commands.CreateOrderCommandHandler,
	updateHandler commands.UpdateOrderCommandHandler,
	deleteHandler commands.DeleteOrderCommandHandler,
	getHandler queries.GetOrderQueryHandler,
	listHandler queries.ListOrdersQueryHandler,
) *OrderService {
	return &OrderService{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
	}
}

// CreateOrder stores a new order and returns its identifier.
func (s *OrderService) CreateOrder(ctx context.Context, fields OrderFields) (int64, error) {
	cmd, err := commands.NewCreateOrderCommand(fields.CustomerID, fields.Status, fields.Address, fields.Price, fields.Items)
	if err != nil {
		return 0, err
	}

	return s.createHandler.Handle(ctx, cmd)
}

// GetOrder returns the order with the given identifier.
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*order.Order, error) {
	return s.getHandler.Handle(ctx, queries.NewGetOrderQuery(id))
}

// UpdateOrder replaces the stored state of order id.
func (s *OrderService) UpdateOrder(ctx context.Context, id int64, fields OrderFields) error {
	cmd, err := commands.NewUpdateOrderCommand(id, fields.CustomerID, fields.Status, fields.Address, fields.Price, fields.Items)
	if err != nil {
		return err
	}

	return s.updateHandler.Handle(ctx, cmd)
}

// DeleteOrder removes order id.
func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	return s.deleteHandler.Handle(ctx, commands.NewDeleteOrderCommand(id))
}

// ListOrders returns the orders matching filter in creation order.
func (s *OrderService) ListOrders(ctx context.Context, filter ListFilter) ([]*order.Order, error) {
	query := queries.NewListOrdersQuery()
	if filter.CustomerID != nil {
		query = queries.NewListCustomerOrdersQuery(*filter.CustomerID)
	}

	return s.listHandler.Handle(ctx, query)
}
