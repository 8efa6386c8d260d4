package commands

import (
	"errors"
	"fmt"

	"galeteria/internal/pkg/errs"
	"galeteria/internal/pkg/guard"
)

var ErrMarkReadyForDeliveryCommandIsNotConstructed = errors.New(
	"MarkReadyForDeliveryCommand must be created via NewMarkReadyForDeliveryCommand constructor",
)

// MarkReadyForDeliveryCommand represents a request to move a delivery
// order from preparation to ready, ensuring its delivery record exists.
type MarkReadyForDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewMarkReadyForDeliveryCommand creates a command to mark a delivery
// order ready.
func NewMarkReadyForDeliveryCommand(orderID int64) (MarkReadyForDeliveryCommand, error) {
	readyCommand := MarkReadyForDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := readyCommand.setOrderID(orderID); err != nil {
		return MarkReadyForDeliveryCommand{}, err
	}

	return readyCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReadyForDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrMarkReadyForDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to mark ready.
func (c MarkReadyForDeliveryCommand) OrderID() int64 {
	return c.orderID
}

func (c *MarkReadyForDeliveryCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}
