package commands

import (
	"errors"

	"galeteria/internal/core/domain/model/kernel"
	"galeteria/internal/core/domain/model/order"
	"galeteria/internal/pkg/errs"
	"galeteria/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new order for a known
// client: the order type and the product lines to reserve stock for.
//
// Example:
//
//	line, _ := order.NewLine(productID, 2)
//	cmd, err := NewCreateOrderCommand(clientID, order.TypeDelivery, []order.Line{line})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, product.ErrInsufficientStock) {
//	    // nothing was reserved, the order was rejected whole
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	clientID  kernel.UUID
	orderType order.Type
	lines     []order.Line

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open an order. The client id
// must be valid, the type one of delivery/pickup/tab and the lines
// non-empty.
func NewCreateOrderCommand(clientID kernel.UUID, orderType order.Type, lines []order.Line) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setClientID(clientID),
		orderCommand.setOrderType(orderType),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ClientID returns the ordering client's identifier.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// OrderType returns the requested order type.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// Lines returns a copy of the requested order lines.
func (c CreateOrderCommand) Lines() []order.Line {
	lines := make([]order.Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setLines(lines []order.Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}

	c.lines = make([]order.Line, len(lines))
	copy(c.lines, lines)
	return nil
}
