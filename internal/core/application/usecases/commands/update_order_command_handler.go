package commands

import (
	"context"
)

// UpdateOrderCommandHandler overwrites existing orders.
// The last writer wins: there is no version check.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle rewrites the header and replaces the items of the order in one transaction.
// Returns errs.ObjectNotFoundError if the order does not exist; nothing is written then.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Update(ctx, cmd.OrderID(), cmd.Order()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
