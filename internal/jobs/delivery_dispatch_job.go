package jobs

import (
	"context"
	"errors"
	"log/slog"

	"galeteria/internal/core/application/usecases/commands"
	"galeteria/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// dispatchSchedule sweeps ready delivery orders every five seconds.
const dispatchSchedule = "*/5 * * * * *"

// DeliveryDispatchJob manages the scheduled dispatch of delivery orders.
// It picks up every ready order of the delivery type and runs the start
// delivery use case for each one.
type DeliveryDispatchJob struct {
	uowFactory commands.OrderUoWFactory
	handler    commands.StartDeliveryCommandHandler
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewDeliveryDispatchJob creates a new job for dispatching ready orders.
func NewDeliveryDispatchJob(
	uowFactory commands.OrderUoWFactory,
	handler commands.StartDeliveryCommandHandler,
	logger *slog.Logger,
) *DeliveryDispatchJob {
	return &DeliveryDispatchJob{
		uowFactory: uowFactory,
		handler:    handler,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "delivery_dispatch_job"),
	}
}

// Start begins the dispatch job on its schedule.
func (j *DeliveryDispatchJob) Start() error {
	_, err := j.cron.AddFunc(dispatchSchedule, func() {
		j.dispatchReadyOrders(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery dispatch job started")
	return nil
}

// Stop stops the dispatch job.
func (j *DeliveryDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery dispatch job stopped")
}

// dispatchReadyOrders lists dispatchable orders outside any transaction and
// starts each one through the regular use case, so every dispatch gets its
// own transaction and a single stuck order cannot block the rest.
func (j *DeliveryDispatchJob) dispatchReadyOrders(ctx context.Context) {
	uow := j.uowFactory.Create()

	ready, err := uow.OrderRepository().GetAllReadyForDispatch(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list dispatchable orders", "error", err)
		return
	}

	for _, o := range ready {
		cmd, err := commands.NewStartDeliveryCommand(o.ID())
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build dispatch command", "order_id", o.ID(), "error", err)
			continue
		}

		if _, err = j.handler.Handle(ctx, cmd); err != nil {
			// Lost races with a manual dispatch and orders without a
			// delivery record are expected business scenarios.
			switch {
			case errors.Is(err, order.ErrInvalidTransition):
			case errors.Is(err, commands.ErrDeliveryNotFound):
				j.logger.WarnContext(ctx, "Ready order has no delivery record", "order_id", o.ID())
			default:
				j.logger.ErrorContext(ctx, "Failed to dispatch order", "order_id", o.ID(), "error", err)
			}
			continue
		}

		j.logger.InfoContext(ctx, "Order sent out for delivery", "order_id", o.ID())
	}
}
