package commands

import (
	"errors"
	"fmt"

	"galeteria/internal/core/domain/model/order"
	"galeteria/internal/pkg/errs"
	"galeteria/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order one step
// along its workflow, with an optional explicit paid flag that overrides
// the transition's own payment rule.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      int64
	targetStatus order.Status
	paidOverride *bool

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to advance an order's
// status. Pass nil for paidOverride to leave the paid flag to the
// transition rules.
func NewUpdateOrderStatusCommand(orderID int64, targetStatus order.Status, paidOverride *bool) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setTargetStatus(targetStatus),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	if paidOverride != nil {
		paid := *paidOverride
		statusCommand.paidOverride = &paid
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c UpdateOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

// TargetStatus returns the requested target status.
func (c UpdateOrderStatusCommand) TargetStatus() order.Status {
	return c.targetStatus
}

// PaidOverride returns the explicit paid flag, or nil when the transition
// rules decide.
func (c UpdateOrderStatusCommand) PaidOverride() *bool {
	if c.paidOverride == nil {
		return nil
	}
	paid := *c.paidOverride
	return &paid
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setTargetStatus(targetStatus order.Status) error {
	if err := targetStatus.Validate(); err != nil {
		return err
	}

	c.targetStatus = targetStatus
	return nil
}
