package queries

import (
	"context"

	"skate/internal/core/domain/model/order"
)

// ListOrdersQueryHandler lists orders in creation order, each with its items.
type ListOrdersQueryHandler struct {
	reader OrderReader
}

func NewListOrdersQueryHandler(reader OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{reader: reader}
}

// Handle returns the matching orders; an empty result is an empty slice, not an error.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if customerID, ok := query.CustomerID(); ok {
		return h.reader.FindAllByCustomerID(ctx, customerID)
	}

	return h.reader.ListAll(ctx)
}
