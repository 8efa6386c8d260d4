package queries_test

import (
	"testing"

	"galeteria/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetProductsQuery_Valid(t *testing.T) {
	query := queries.NewGetProductsQuery()
	require.NoError(t, query.Validate())
}

func TestGetProductsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetProductsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetProductsQueryIsNotConstructed)
}

func TestNewGetUncompletedOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetUncompletedOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetUncompletedOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUncompletedOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUncompletedOrdersQueryIsNotConstructed)
}

func TestNewGetActiveDeliveriesQuery_Valid(t *testing.T) {
	query := queries.NewGetActiveDeliveriesQuery()
	require.NoError(t, query.Validate())
}

func TestGetActiveDeliveriesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetActiveDeliveriesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetActiveDeliveriesQueryIsNotConstructed)
}
