package queries

import (
	"errors"
	"time"

	"galeteria/internal/pkg/guard"
)

var ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
	"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor",
)

// GetActiveDeliveriesQuery retrieves deliveries still en route, joined with
// their order and client so the counter can see where each one is headed.
type GetActiveDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveDeliveriesQuery creates a query to list en-route deliveries.
func NewGetActiveDeliveriesQuery() GetActiveDeliveriesQuery {
	return GetActiveDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveriesQueryIsNotConstructed)
}

// GetActiveDeliveriesQueryResponse is one en-route delivery. StartedAt is
// nil until the courier leaves; OrderStatus carries the order's own wire
// status alongside.
type GetActiveDeliveriesQueryResponse struct {
	ID            int64
	OrderID       int64
	OrderStatus   string
	ClientName    string
	ClientAddress string
	StartedAt     *time.Time
}
