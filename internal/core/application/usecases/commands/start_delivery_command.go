package commands

import (
	"errors"
	"fmt"

	"galeteria/internal/pkg/errs"
	"galeteria/internal/pkg/guard"
)

var ErrStartDeliveryCommandIsNotConstructed = errors.New(
	"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
)

// StartDeliveryCommand represents a request to send a ready delivery order
// out the door: the order moves to out_for_delivery and its delivery
// record is stamped en_route.
type StartDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewStartDeliveryCommand creates a command to start an order's delivery.
func NewStartDeliveryCommand(orderID int64) (StartDeliveryCommand, error) {
	startCommand := StartDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := startCommand.setOrderID(orderID); err != nil {
		return StartDeliveryCommand{}, err
	}

	return startCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to send out.
func (c StartDeliveryCommand) OrderID() int64 {
	return c.orderID
}

func (c *StartDeliveryCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}
