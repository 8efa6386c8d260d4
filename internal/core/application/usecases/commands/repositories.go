// Package commands contains the write operations of the order engine.
// Each command follows the same pattern: a constructor-guarded command
// object, a handler owning one unit-of-work transaction, and typed errors
// for every rejection. No command leaves a partial mutation behind: the
// transaction either commits the whole operation or rolls all of it back.
package commands

import (
	"context"

	"galeteria/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. The aggregates a command may touch decide which interface its
// handler depends on.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a
	// transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// ClientRepoFactory provides access to the client repository within a
	// transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within
	// a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// CounterRepoFactory provides access to the id counters within a
	// transaction.
	CounterRepoFactory interface {
		CounterRepository() ports.CounterRepository
	}

	// CatalogUoW manages transactions for catalog-only operations.
	CatalogUoW interface {
		TxManager
		ProductRepoFactory
	}

	// CatalogUoWFactory creates catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// DirectoryUoW manages transactions for client-directory operations.
	DirectoryUoW interface {
		TxManager
		ClientRepoFactory
	}

	// DirectoryUoWFactory creates directory unit of work instances.
	DirectoryUoWFactory interface {
		Create() DirectoryUoW
	}

	// OrderUoW manages transactions for order-engine operations, which may
	// reach across orders, stock, deliveries, the directory and the id
	// counters in one atomic unit.
	OrderUoW interface {
		TxManager
		ProductRepoFactory
		ClientRepoFactory
		OrderRepoFactory
		DeliveryRepoFactory
		CounterRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
