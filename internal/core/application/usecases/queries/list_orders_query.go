package queries

import (
	"errors"

	"skate/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery or NewListCustomerOrdersQuery constructor",
)

// ListOrdersQuery retrieves every order, or the orders of one customer.
//
// Example:
//
//	all := NewListOrdersQuery()
//	mine := NewListCustomerOrdersQuery(customerID)
//
//	orders, err := handler.Handle(ctx, mine)
type ListOrdersQuery struct {
	customerID  int64
	hasCustomer bool

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates an unfiltered query.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewListCustomerOrdersQuery creates a query restricted to customerID.
func NewListCustomerOrdersQuery(customerID int64) ListOrdersQuery {
	return ListOrdersQuery{
		customerID:  customerID,
		hasCustomer: true,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through a constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer filter and whether one is set.
func (q ListOrdersQuery) CustomerID() (int64, bool) {
	return q.customerID, q.hasCustomer
}
