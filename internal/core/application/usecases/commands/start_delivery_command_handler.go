package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"galeteria/internal/core/domain/model/delivery"
	"galeteria/internal/core/domain/model/order"
	"galeteria/internal/core/ports"
)

// StartDeliveryCommandHandler sends ready delivery orders out for
// delivery. The dispatch job and the HTTP adapter both drive the workflow
// through this handler.
type StartDeliveryCommandHandler struct {
	uowFactory  OrderUoWFactory
	coordinator DeliveryCoordinator
	publisher   ports.OrderEventPublisher
	logger      *slog.Logger
}

// NewStartDeliveryCommandHandler creates a handler for starting deliveries.
func NewStartDeliveryCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher,
	logger *slog.Logger) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory:  uowFactory,
		coordinator: NewDeliveryCoordinator(),
		publisher:   publisher,
		logger:      logger,
	}
}

// Handle moves the order to out_for_delivery and stamps its delivery
// record's departure time. Non-delivery orders fail with
// ErrWrongOrderType; an order without a delivery record fails with
// ErrDeliveryNotFound. Returns the stamped delivery.
func (h *StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) (*delivery.Delivery, error) {
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

	if err = aggregate.ChangeStatus(order.StatusOutForDelivery, nil); err != nil {
		return nil, err
	}

	started, err := h.coordinator.Start(ctx, uow, aggregate.ID(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishOrderEvent(ctx, h.publisher, h.logger, aggregate)
	return started, nil
}
