package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"galeteria/internal/core/domain/model/order"
	"galeteria/internal/core/ports"
)

// UpdateOrderStatusCommandHandler advances orders along the workflow table
// and keeps the delivery record in step: moving a delivery order out for
// delivery stamps its departure, marking it delivered closes the record.
type UpdateOrderStatusCommandHandler struct {
	uowFactory  OrderUoWFactory
	coordinator DeliveryCoordinator
	publisher   ports.OrderEventPublisher
	logger      *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher,
	logger *slog.Logger) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		coordinator: NewDeliveryCoordinator(),
		publisher:   publisher,
		logger:      logger,
	}
}

// Handle applies the requested transition. Invalid moves fail with
// order.ErrInvalidTransition and nothing changes; cancellation is not
// accepted here because it must release stock through CancelOrder.
// A delivery order whose record is unexpectedly missing is logged and the
// status change proceeds, so a lost record never wedges the workflow.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
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

	if err = aggregate.ChangeStatus(cmd.TargetStatus(), cmd.PaidOverride()); err != nil {
		return nil, err
	}

	if aggregate.Type() == order.TypeDelivery {
		switch cmd.TargetStatus() {
		case order.StatusOutForDelivery:
			if _, err = h.coordinator.Start(ctx, uow, aggregate.ID(), time.Now().UTC()); err != nil {
				if !errors.Is(err, ErrDeliveryNotFound) {
					return nil, err
				}
				h.logger.Warn("order has no delivery record to start", "order_id", aggregate.ID())
			}
		case order.StatusDelivered:
			if _, err = h.coordinator.Complete(ctx, uow, aggregate.ID()); err != nil {
				if !errors.Is(err, ErrDeliveryNotFound) {
					return nil, err
				}
				h.logger.Warn("order has no delivery record to complete", "order_id", aggregate.ID())
			}
		}
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
