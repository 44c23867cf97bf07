package commands

import (
	"context"
)

// SweepOrphanItemsCommandHandler deletes dangling order items.
type SweepOrphanItemsCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewSweepOrphanItemsCommandHandler(uowFactory OrderUoWFactory) SweepOrphanItemsCommandHandler {
	return SweepOrphanItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes orphan items in one transaction and reports how many were removed.
func (h *SweepOrphanItemsCommandHandler) Handle(ctx context.Context, cmd SweepOrphanItemsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.OrderRepository().DeleteOrphanItems(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
