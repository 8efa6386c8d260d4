package commands

import (
	"context"
	"errors"
	"log/slog"

	"galeteria/internal/core/domain/model/order"
	"galeteria/internal/core/ports"
	"galeteria/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels orders and reverses their stock
// reservation: exactly the product/quantity pairs recorded on the order's
// lines are released, in one transaction with the status change.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher,
	logger *slog.Logger) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle cancels the order. Delivered or already-cancelled orders fail with
// order.ErrOrderAlreadyTerminal so stock is never released twice. A line
// whose product has since disappeared from the catalog is logged and
// skipped; the remaining lines still release.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	if err = aggregate.Cancel(); err != nil {
		return nil, err
	}

	productRepo := uow.ProductRepository()
	for _, line := range aggregate.Lines() {
		reserved, err := productRepo.GetForUpdate(ctx, line.ProductID())
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				h.logger.Warn("cancelled order references unknown product, stock not released",
					"order_id", aggregate.ID(),
					"product_id", line.ProductID().String())
				continue
			}
			return nil, err
		}

		if err = reserved.Release(line.Quantity()); err != nil {
			return nil, err
		}

		if err = productRepo.Update(ctx, reserved); err != nil {
			return nil, err
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
