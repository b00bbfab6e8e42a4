package commands

import (
	"context"
)

// MarkLabelPrintedCommandHandler moves an order's label status to printed.
// Uses a transaction so the dashboard's print action cannot race a
// concurrent regeneration on the same order.
type MarkLabelPrintedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkLabelPrintedCommandHandler creates a handler for the print action.
func NewMarkLabelPrintedCommandHandler(uowFactory OrderUoWFactory) MarkLabelPrintedCommandHandler {
	return MarkLabelPrintedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark-printed command. Orders without a label are
// refused; re-printing an already printed label is allowed.
func (h *MarkLabelPrintedCommandHandler) Handle(ctx context.Context, cmd MarkLabelPrintedCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkLabelPrinted(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
