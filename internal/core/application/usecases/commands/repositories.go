// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"bakery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SettingsRepoFactory provides access to the store settings repository within a transaction.
	SettingsRepoFactory interface {
		StoreSettingsRepository() ports.StoreSettingsRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// OrderUoW manages transactions for order-only operations
	// (status changes, deletion).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ProductUoW manages transactions for catalog edits.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// SettingsUoW manages transactions for store settings edits.
	SettingsUoW interface {
		TxManager
		SettingsRepoFactory
	}

	// SettingsUoWFactory creates new settings unit of work instances.
	SettingsUoWFactory interface {
		Create() SettingsUoW
	}

	// CheckoutUoW spans everything a checkout reads and writes: the store
	// settings (open flag), the catalog (prices) and the new order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   settings, err := uow.StoreSettingsRepository().Get(ctx)
	//   products, err := uow.ProductRepository().GetByIDs(ctx, ids)
	//   err = uow.OrderRepository().Add(ctx, placed)
	//
	//   err = uow.Commit(ctx)
	CheckoutUoW interface {
		TxManager
		SettingsRepoFactory
		ProductRepoFactory
		OrderRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// CustomerUoW reads orders and rewrites customer summaries.
	CustomerUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}
)
