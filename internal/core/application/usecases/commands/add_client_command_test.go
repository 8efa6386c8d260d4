package commands_test

import (
	"testing"

	"galeteria/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddClientCommand(t *testing.T) {
	cmd, err := commands.NewAddClientCommand("Maria Silva", "+55 11 98765-4321", "Rua das Flores 10")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Maria Silva", cmd.Name())
	assert.Equal(t, "+55 11 98765-4321", cmd.Phone())
	assert.Equal(t, "Rua das Flores 10", cmd.Address())
}

func TestNewAddClientCommand_AddressOptional(t *testing.T) {
	cmd, err := commands.NewAddClientCommand("Maria Silva", "+55 11 98765-4321", "")
	require.NoError(t, err)
	assert.Empty(t, cmd.Address())
}

func TestNewAddClientCommand_Invalid(t *testing.T) {
	_, err := commands.NewAddClientCommand("", "+55 11 98765-4321", "")
	require.Error(t, err)

	_, err = commands.NewAddClientCommand("Maria Silva", "", "")
	require.Error(t, err)
}
