package commands_test

import (
	"testing"

	"galeteria/internal/core/application/usecases/commands"
	"galeteria/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddProductCommand(t *testing.T) {
	cmd, err := commands.NewAddProductCommand("Whole Roast Chicken", 2500, 30, product.CategoryRoast)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Whole Roast Chicken", cmd.Name())
	assert.Equal(t, int64(2500), cmd.PriceCents())
	assert.Equal(t, 30, cmd.Stock())
	assert.Equal(t, product.CategoryRoast, cmd.Category())
}

func TestNewAddProductCommand_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args func() (commands.AddProductCommand, error)
	}{
		{"empty name", func() (commands.AddProductCommand, error) {
			return commands.NewAddProductCommand("", 2500, 30, product.CategoryRoast)
		}},
		{"negative price", func() (commands.AddProductCommand, error) {
			return commands.NewAddProductCommand("Roast", -1, 30, product.CategoryRoast)
		}},
		{"negative stock", func() (commands.AddProductCommand, error) {
			return commands.NewAddProductCommand("Roast", 2500, -1, product.CategoryRoast)
		}},
		{"unknown category", func() (commands.AddProductCommand, error) {
			return commands.NewAddProductCommand("Roast", 2500, 30, product.CategoryUnknown)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.args()
			require.Error(t, err)
		})
	}
}

func TestAddProductCommand_NotConstructed(t *testing.T) {
	cmd := commands.AddProductCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrAddProductCommandIsNotConstructed)
}
