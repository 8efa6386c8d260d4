// Package queries contains the read side of the engine: constructor-guarded
// query objects with raw-SQL handlers reading directly from the database,
// bypassing the aggregates.
package queries

import (
	"errors"

	"galeteria/internal/core/domain/model/kernel"
	"galeteria/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves the full catalog with live stock counters.
type GetProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query to list the catalog.
func NewGetProductsQuery() GetProductsQuery {
	return GetProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// GetProductsQueryResponse is one catalog row. Category uses the wire form
// (roast, combo, mealbox) and the price is in cents.
type GetProductsQueryResponse struct {
	ID         kernel.UUID
	Name       string
	PriceCents int64
	Stock      int
	Category   string
}
