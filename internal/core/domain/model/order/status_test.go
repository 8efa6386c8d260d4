package order_test

import (
	"fmt"
	"testing"

	"galeteria/internal/core/domain/model/order"
	"galeteria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate defined statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.StatusInPreparation,
			order.StatusReady,
			order.StatusOutForDelivery,
			order.StatusAwaitingPickup,
			order.StatusDelivered,
			order.StatusCancelled,
		}

		for _, status := range validStatuses {
			t.Run(status.String(), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.StatusUnknown, order.Status(-1), order.Status(7), order.Status(100)} {
			t.Run(fmt.Sprintf("value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.StatusInPreparation, "in_preparation"},
		{order.StatusReady, "ready"},
		{order.StatusOutForDelivery, "out_for_delivery"},
		{order.StatusAwaitingPickup, "awaiting_pickup"},
		{order.StatusDelivered, "delivered"},
		{order.StatusCancelled, "cancelled"},
		{order.StatusUnknown, "Unknown"},
		{order.Status(42), "Unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trips every wire form", func(t *testing.T) {
		for _, s := range []string{"in_preparation", "ready", "out_for_delivery", "awaiting_pickup", "delivered", "cancelled"} {
			status, err := order.StatusFromString(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("rejects unknown wire form", func(t *testing.T) {
		_, err := order.StatusFromString("baking")

		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.StatusDelivered.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())
	assert.False(t, order.StatusInPreparation.IsTerminal())
	assert.False(t, order.StatusReady.IsTerminal())
	assert.False(t, order.StatusOutForDelivery.IsTerminal())
	assert.False(t, order.StatusAwaitingPickup.IsTerminal())
}

func TestStatus_Next(t *testing.T) {
	t.Run("allows every transition in the workflow table", func(t *testing.T) {
		testCases := []struct {
			from      order.Status
			to        order.Status
			typ       order.Type
			forcePaid bool
		}{
			{order.StatusInPreparation, order.StatusReady, order.TypeTab, true},
			{order.StatusInPreparation, order.StatusReady, order.TypePickup, false},
			{order.StatusInPreparation, order.StatusReady, order.TypeDelivery, false},
			{order.StatusReady, order.StatusOutForDelivery, order.TypeDelivery, false},
			{order.StatusReady, order.StatusAwaitingPickup, order.TypePickup, false},
			{order.StatusOutForDelivery, order.StatusDelivered, order.TypeDelivery, false},
			{order.StatusAwaitingPickup, order.StatusDelivered, order.TypePickup, false},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("%s->%s (%s)", tc.from, tc.to, tc.typ), func(t *testing.T) {
				forcePaid, err := tc.from.Next(tc.to, tc.typ)

				require.NoError(t, err)
				assert.Equal(t, tc.forcePaid, forcePaid)
			})
		}
	})

	t.Run("rejects transitions outside the table", func(t *testing.T) {
		testCases := []struct {
			name string
			from order.Status
			to   order.Status
			typ  order.Type
		}{
			{"skip awaiting_pickup", order.StatusReady, order.StatusDelivered, order.TypePickup},
			{"skip out_for_delivery", order.StatusReady, order.StatusDelivered, order.TypeDelivery},
			{"backwards", order.StatusDelivered, order.StatusReady, order.TypePickup},
			{"out of terminal", order.StatusCancelled, order.StatusReady, order.TypeTab},
			{"pickup branch for delivery order", order.StatusReady, order.StatusAwaitingPickup, order.TypeDelivery},
			{"delivery branch for pickup order", order.StatusReady, order.StatusOutForDelivery, order.TypePickup},
			{"tab past ready", order.StatusReady, order.StatusAwaitingPickup, order.TypeTab},
			{"skip preparation", order.StatusInPreparation, order.StatusOutForDelivery, order.TypeDelivery},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := tc.from.Next(tc.to, tc.typ)

				require.ErrorIs(t, err, order.ErrInvalidTransition)
			})
		}
	})
}
