package ports

import (
	"context"

	"galeteria/internal/core/domain/model/client"
	"galeteria/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for the customer
// directory.
type ClientRepository interface {
	// Add persists a new client.
	Add(ctx context.Context, aggregate *client.Client) error

	// Get retrieves a client by id. Order creation uses it to validate the
	// client reference before any stock is touched.
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)
}
