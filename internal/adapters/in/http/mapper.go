package http

import (
	"errors"
	"fmt"

	"skate/internal/core/application/service"
	"skate/internal/core/domain/model/order"
	"skate/internal/generated/servers"
	"skate/internal/pkg/errs"
)

// fieldsFromRequest converts the wire body into order fields. Every invalid
// field is reported, not only the first one.
func fieldsFromRequest(body servers.NewOrder) (service.OrderFields, error) {
	status, statusErr := order.ParseStatus(string(body.OrderStatus))

	items := make([]order.Item, 0, len(body.Items))
	var itemErrs []error
	for i, in := range body.Items {
		item, err := order.NewItem(in.ProductId, in.Quantity, in.UnitPrice, in.TotalPrice)
		if err != nil {
			itemErrs = append(itemErrs, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err))
			continue
		}
		items = append(items, item)
	}

	if err := errors.Join(statusErr, errors.Join(itemErrs...)); err != nil {
		return service.OrderFields{}, err
	}

	return service.OrderFields{
		CustomerID: body.CustomerId,
		Status:     status,
		Address:    body.Address,
		Price:      body.Price,
		Items:      items,
	}, nil
}

func orderToResponse(o *order.Order) servers.Order {
	items := make([]servers.OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, servers.OrderItem{
			ProductId:  item.ProductID(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			TotalPrice: item.TotalPrice(),
		})
	}

	return servers.Order{
		OrderId:     o.ID(),
		CustomerId:  o.CustomerID(),
		OrderStatus: servers.OrderStatus(o.Status().String()),
		Address:     o.Address(),
		Price:       o.Price(),
		Items:       items,
	}
}
