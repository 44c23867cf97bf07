package ports

import (
	"context"

	"skate/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An aggregate spans two tables (headers and items); implementations keep
// both consistent when they run inside a UnitOfWork transaction.
type OrderRepository interface {
	// Add persists a new order with its items and returns the generated identifier.
	Add(ctx context.Context, aggregate *order.Order) (int64, error)

	// Update overwrites the header of order id and replaces its items.
	// Returns an errs.ObjectNotFoundError when no order has that id.
	Update(ctx context.Context, id int64, aggregate *order.Order) error

	// Delete removes order id together with its items.
	// Returns an errs.ObjectNotFoundError when no order has that id.
	Delete(ctx context.Context, id int64) error

	// Get retrieves an order with all of its items.
	// Returns an errs.ObjectNotFoundError when no order has that id.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// FindAllByCustomerID returns the fully hydrated orders of a customer
	// in insertion order.
	FindAllByCustomerID(ctx context.Context, customerID int64) ([]*order.Order, error)

	// ListAll returns every order, fully hydrated, in insertion order.
	ListAll(ctx context.Context) ([]*order.Order, error)

	// DeleteOrphanItems removes item rows that reference no existing order
	// and reports how many were removed.
	DeleteOrphanItems(ctx context.Context) (int64, error)
}
