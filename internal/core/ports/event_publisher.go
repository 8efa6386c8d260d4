package ports

import (
	"context"
	"time"
)

// OrderEvent describes one committed change to an order, published for
// notification consumers. TotalCents mirrors the order total; Status and
// OrderType use the domain wire forms.
type OrderEvent struct {
	OrderID    int64     `json:"order_id"`
	OrderType  string    `json:"order_type"`
	Status     string    `json:"status"`
	Paid       bool      `json:"paid"`
	TotalCents int64     `json:"total_cents"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderEventPublisher delivers order events to the message broker.
// Publishing is best-effort: it runs after the owning transaction commits
// and a failure must never un-commit the mutation.
type OrderEventPublisher interface {
	PublishOrderStatusChanged(ctx context.Context, event OrderEvent) error
}
