package ports

import "context"

// Counter names for the two durable sequences.
const (
	CounterNextOrderID    = "next_order_id"
	CounterNextDeliveryID = "next_delivery_id"
)

// CounterRepository hands out monotonically increasing identifiers.
// Next must run inside the caller's transaction so an aborted operation
// never burns an id that a later observer could miss; ids are never reused.
type CounterRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
