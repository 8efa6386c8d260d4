package ports

import (
	"context"

	"galeteria/internal/core/domain/model/kernel"
	"galeteria/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the catalog.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product, including its stock
	// counter after a reservation or release.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by id.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate retrieves a product by id with a row lock, so concurrent
	// stock mutations serialize on the product row.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
