// Package commands contains the operations that change state: every one of
// them validates locally, sends a single mutation to the remote API and then
// replaces the read model with what the remote reports back.
package commands

import (
	"context"

	"dashboard/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RequestRepoFactory provides access to the request read model within a transaction.
	RequestRepoFactory interface {
		RequestRepository() ports.RequestRepository
	}

	// HandoffRepoFactory provides access to locker handoffs within a transaction.
	HandoffRepoFactory interface {
		HandoffRepository() ports.HandoffRepository
	}

	// RequestUoW manages transactions for request-only operations.
	RequestUoW interface {
		TxManager
		RequestRepoFactory
	}

	// RequestUoWFactory creates new request unit of work instances.
	RequestUoWFactory interface {
		Create() RequestUoW
	}

	// UoW manages transactions across requests and handoffs.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   handoffRepo := uow.HandoffRepository()
	//   requestRepo := uow.RequestRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		RequestRepoFactory
		HandoffRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
