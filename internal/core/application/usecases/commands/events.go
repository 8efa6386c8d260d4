package commands

import (
	"context"
	"log/slog"
	"time"

	"galeteria/internal/core/domain/model/order"
	"galeteria/internal/core/ports"
)

// publishOrderEvent emits the order's current state after a successful
// commit. Publishing is best-effort: a broker failure is logged and
// swallowed, never propagated to the caller whose mutation already
// committed.
func publishOrderEvent(ctx context.Context, publisher ports.OrderEventPublisher, logger *slog.Logger, o *order.Order) {
	if publisher == nil {
		return
	}

	event := ports.OrderEvent{
		OrderID:    o.ID(),
		OrderType:  o.Type().String(),
		Status:     o.Status().String(),
		Paid:       o.Paid(),
		TotalCents: o.Total().Cents(),
		OccurredAt: time.Now().UTC(),
	}

	if err := publisher.PublishOrderStatusChanged(ctx, event); err != nil && logger != nil {
		logger.Warn("failed to publish order event",
			"order_id", o.ID(),
			"status", o.Status().String(),
			"error", err)
	}
}
