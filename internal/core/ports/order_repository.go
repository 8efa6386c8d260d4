package ports

import (
	"context"

	"galeteria/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order with its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and paid-flag changes. Lines and total are
	// immutable and never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAllReadyForDispatch retrieves delivery-type orders sitting in the
	// ready status. The dispatch job uses it to start their deliveries.
	GetAllReadyForDispatch(ctx context.Context) ([]*order.Order, error)
}
