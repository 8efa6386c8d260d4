package commands_test

import (
	"testing"

	"galeteria/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddClientCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddClientCommand("Maria Silva", "+55 11 98765-4321", "Rua das Flores 10")

	repo := new(MockClientRepository)
	uow := new(MockDirectoryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*client.Client")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDirectoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddClientCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, "Maria Silva", created.Name())
	require.NoError(t, created.ID().Validate())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddClientCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddClientCommand{} // not constructed properly
	factory := new(MockDirectoryUoWFactory)
	h := commands.NewAddClientCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
