package commands

import (
	"errors"
	"fmt"

	"printship/internal/pkg/guard"
)

var (
	ErrCreateShippingLabelCommandIsNotConstructed = errors.New(
		"CreateShippingLabelCommand must be created via NewCreateShippingLabelCommand constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")
)

// CreateShippingLabelCommand requests a new shipping label for an order.
// The same command serves first-time creation and regeneration: as long as
// the carrier has not scanned the package, staff may re-issue the label to
// correct mistakes, and each issue produces a fresh tracking number.
type CreateShippingLabelCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewCreateShippingLabelCommand creates a command to (re)create an order's label.
// Validates that the order id is positive.
func NewCreateShippingLabelCommand(orderID int64) (CreateShippingLabelCommand, error) {
	cmd := CreateShippingLabelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CreateShippingLabelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShippingLabelCommand) Validate() error {
	return c.guard.Validate(ErrCreateShippingLabelCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to label.
func (c CreateShippingLabelCommand) OrderID() int64 {
	return c.orderID
}

func (c *CreateShippingLabelCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return fmt.Errorf("%w: %d", ErrOrderIDIsInvalid, orderID)
	}

	c.orderID = orderID
	return nil
}
