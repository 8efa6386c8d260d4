package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"galeteria/internal/core/domain/model/order"
	"galeteria/internal/core/ports"
)

// ErrWrongOrderType is returned when a delivery-only operation is invoked
// on a pickup or tab order.
var ErrWrongOrderType = errors.New("operation applies to delivery orders only")

// MarkReadyForDeliveryCommandHandler moves delivery orders to the ready
// status and guarantees a delivery record exists for them, opening one if
// order creation somehow did not.
type MarkReadyForDeliveryCommandHandler struct {
	uowFactory  OrderUoWFactory
	coordinator DeliveryCoordinator
	publisher   ports.OrderEventPublisher
	logger      *slog.Logger
}

// NewMarkReadyForDeliveryCommandHandler creates a handler for the
// ready-for-delivery step.
func NewMarkReadyForDeliveryCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher,
	logger *slog.Logger) MarkReadyForDeliveryCommandHandler {
	return MarkReadyForDeliveryCommandHandler{
		uowFactory:  uowFactory,
		coordinator: NewDeliveryCoordinator(),
		publisher:   publisher,
		logger:      logger,
	}
}

// Handle marks the order ready. Non-delivery orders fail with
// ErrWrongOrderType; orders not in preparation fail with
// order.ErrInvalidTransition. Returns the updated order.
func (h *MarkReadyForDeliveryCommandHandler) Handle(ctx context.Context, cmd MarkReadyForDeliveryCommand) (*order.Order, error) {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if aggregate.Type() != order.TypeDelivery {
		return nil, fmt.Errorf("%w: order %d is %s", ErrWrongOrderType, aggregate.ID(), aggregate.Type())
	}

	if err = aggregate.ChangeStatus(order.StatusReady, nil); err != nil {
		return nil, err
	}

	if _, err = h.coordinator.Open(ctx, uow, aggregate.ID()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishOrderEvent(ctx, h.publisher, h.logger, aggregate)
	return aggregate, nil
}
