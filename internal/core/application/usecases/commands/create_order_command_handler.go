package commands

import (
	"context"
	"log/slog"
	"time"

	"galeteria/internal/core/domain/model/kernel"
	"galeteria/internal/core/domain/model/order"
	"galeteria/internal/core/ports"
)

// CreateOrderCommandHandler opens new orders: it validates the client,
// reserves stock for every line, prices the order at current unit prices
// and, for delivery orders, opens the delivery record, all inside one
// transaction. If any line cannot be reserved the whole order is rejected
// and no stock moves.
type CreateOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	coordinator DeliveryCoordinator
	publisher   ports.OrderEventPublisher
	logger      *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher,
	logger *slog.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		coordinator: NewDeliveryCoordinator(),
		publisher:   publisher,
		logger:      logger,
	}
}

// Handle processes the order creation command. Products are locked and
// reserved in the submitted line order; the total is the sum of current
// unit price times quantity per line, frozen at creation. Tab orders open
// already paid. Returns the created order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// The client reference is checked before any stock is touched.
	if _, err := uow.ClientRepository().Get(ctx, cmd.ClientID()); err != nil {
		return nil, err
	}

	id, err := uow.CounterRepository().Next(ctx, ports.CounterNextOrderID)
	if err != nil {
		return nil, err
	}

	var total kernel.Money
	productRepo := uow.ProductRepository()
	for _, line := range cmd.Lines() {
		aggregate, err := productRepo.GetForUpdate(ctx, line.ProductID())
		if err != nil {
			return nil, err
		}

		if err = aggregate.Reserve(line.Quantity()); err != nil {
			return nil, err
		}

		if err = productRepo.Update(ctx, aggregate); err != nil {
			return nil, err
		}

		total = total.Add(aggregate.Price().MultiplyQty(line.Quantity()))
	}

	created, err := order.NewOrder(id, cmd.ClientID(), cmd.OrderType(), cmd.Lines(), total, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if created.Type() == order.TypeDelivery {
		if _, err = h.coordinator.Open(ctx, uow, created.ID()); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishOrderEvent(ctx, h.publisher, h.logger, created)
	return created, nil
}
