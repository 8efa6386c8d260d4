package commands

import (
	"context"

	"galeteria/internal/core/domain/model/client"
	"galeteria/internal/core/domain/model/kernel"
)

// AddClientCommandHandler registers new clients in the directory.
type AddClientCommandHandler struct {
	uowFactory DirectoryUoWFactory
}

// NewAddClientCommandHandler creates a handler for client registration.
func NewAddClientCommandHandler(uowFactory DirectoryUoWFactory) AddClientCommandHandler {
	return AddClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the client with a fresh identifier and persists it.
func (h *AddClientCommandHandler) Handle(ctx context.Context, cmd AddClientCommand) (*client.Client, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := client.NewClient(kernel.NewUUID(), cmd.Name(), cmd.Phone(), cmd.Address())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ClientRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
