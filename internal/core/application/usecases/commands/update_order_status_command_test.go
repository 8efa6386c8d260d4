package commands_test

import (
	"testing"

	"galeteria/internal/core/application/usecases/commands"
	"galeteria/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	cmd, err := commands.NewUpdateOrderStatusCommand(7, order.StatusReady, nil)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(7), cmd.OrderID())
	assert.Equal(t, order.StatusReady, cmd.TargetStatus())
	assert.Nil(t, cmd.PaidOverride())
}

func TestNewUpdateOrderStatusCommand_PaidOverrideIsCopied(t *testing.T) {
	paid := true
	cmd, err := commands.NewUpdateOrderStatusCommand(7, order.StatusReady, &paid)
	require.NoError(t, err)

	paid = false
	override := cmd.PaidOverride()
	require.NotNil(t, override)
	assert.True(t, *override)

	*override = false
	again := cmd.PaidOverride()
	assert.True(t, *again)
}

func TestNewUpdateOrderStatusCommand_Invalid(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(0, order.StatusReady, nil)
	require.Error(t, err)

	_, err = commands.NewUpdateOrderStatusCommand(7, order.StatusUnknown, nil)
	require.Error(t, err)
}
