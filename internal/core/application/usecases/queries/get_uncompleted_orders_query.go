package queries

import (
	"errors"
	"time"

	"galeteria/internal/core/domain/model/kernel"
	"galeteria/internal/pkg/guard"
)

var ErrGetUncompletedOrdersQueryIsNotConstructed = errors.New(
	"GetUncompletedOrdersQuery must be created via NewGetUncompletedOrdersQuery constructor",
)

// GetUncompletedOrdersQuery retrieves every order still moving through the
// workflow, meaning anything not yet delivered or cancelled. The kitchen
// board and the counter both read from it.
type GetUncompletedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUncompletedOrdersQuery creates a query to list open orders.
func NewGetUncompletedOrdersQuery() GetUncompletedOrdersQuery {
	return GetUncompletedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUncompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUncompletedOrdersQueryIsNotConstructed)
}

// GetUncompletedOrdersLine is one order position in a response row.
type GetUncompletedOrdersLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// GetUncompletedOrdersQueryResponse is one open order with its lines.
// OrderType and Status use the wire forms; the client name is joined in
// for display.
type GetUncompletedOrdersQueryResponse struct {
	ID         int64
	ClientID   kernel.UUID
	ClientName string
	OrderType  string
	Status     string
	Paid       bool
	TotalCents int64
	CreatedAt  time.Time
	Lines      []GetUncompletedOrdersLine
}
