package ports

import (
	"context"

	"galeteria/internal/core/domain/model/delivery"
)

// DeliveryRepository defines the persistence contract for delivery records.
type DeliveryRepository interface {
	// Add persists a new delivery.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists transit-state changes.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// GetByOrderID retrieves the delivery belonging to an order. Returns an
	// errs.ObjectNotFoundError when the order has no delivery record, which
	// callers use for idempotent creation.
	GetByOrderID(ctx context.Context, orderID int64) (*delivery.Delivery, error)
}
