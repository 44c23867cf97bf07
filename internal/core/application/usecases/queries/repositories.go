// Package queries contains read operations over orders. Queries run outside of a
// transaction against the shared connection pool.
package queries

import (
	"context"

	"skate/internal/core/domain/model/order"
)

// OrderReader is the read side of the order repository.
type OrderReader interface {
	Get(ctx context.Context, id int64) (*order.Order, error)
	FindAllByCustomerID(ctx context.Context, customerID int64) ([]*order.Order, error)
	ListAll(ctx context.Context) ([]*order.Order, error)
}
