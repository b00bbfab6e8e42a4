package commands

import (
	"errors"
	"fmt"

	"printship/internal/pkg/guard"
)

var ErrMarkLabelPrintedCommandIsNotConstructed = errors.New(
	"MarkLabelPrintedCommand must be created via NewMarkLabelPrintedCommand constructor",
)

// MarkLabelPrintedCommand records that staff printed an order's label.
type MarkLabelPrintedCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewMarkLabelPrintedCommand creates a mark-printed command for an order.
func NewMarkLabelPrintedCommand(orderID int64) (MarkLabelPrintedCommand, error) {
	cmd := MarkLabelPrintedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if orderID <= 0 {
		return MarkLabelPrintedCommand{}, fmt.Errorf("%w: %d", ErrOrderIDIsInvalid, orderID)
	}

	cmd.orderID = orderID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkLabelPrintedCommand) Validate() error {
	return c.guard.Validate(ErrMarkLabelPrintedCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose label was printed.
func (c MarkLabelPrintedCommand) OrderID() int64 {
	return c.orderID
}
