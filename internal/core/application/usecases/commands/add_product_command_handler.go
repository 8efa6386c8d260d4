package commands

import (
	"context"

	"galeteria/internal/core/domain/model/kernel"
	"galeteria/internal/core/domain/model/product"
)

// AddProductCommandHandler registers new products in the catalog.
type AddProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewAddProductCommandHandler creates a handler for catalog registration.
func NewAddProductCommandHandler(uowFactory CatalogUoWFactory) AddProductCommandHandler {
	return AddProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the product with a fresh identifier and persists it.
// Returns the created aggregate so the caller can expose the assigned id.
func (h *AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromCents(cmd.PriceCents())
	if err != nil {
		return nil, err
	}

	aggregate, err := product.NewProduct(kernel.NewUUID(), cmd.Name(), price, cmd.Stock(), cmd.Category())
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

	if err = uow.ProductRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
