package commands_test

import (
	"testing"

	"galeteria/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartDeliveryCommand(t *testing.T) {
	cmd, err := commands.NewStartDeliveryCommand(3)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(3), cmd.OrderID())
}

func TestNewStartDeliveryCommand_Invalid(t *testing.T) {
	_, err := commands.NewStartDeliveryCommand(0)
	require.Error(t, err)

	_, err = commands.NewStartDeliveryCommand(-1)
	require.Error(t, err)
}

func TestStartDeliveryCommand_NotConstructed(t *testing.T) {
	cmd := commands.StartDeliveryCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrStartDeliveryCommandIsNotConstructed)
}
