package commands

import (
	"errors"
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/store"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/guard"
)

var ErrAddStoreTransactionCommandIsNotConstructed = errors.New(
	"AddStoreTransactionCommand must be created via NewAddStoreTransactionCommand constructor",
)

// AddStoreTransactionCommand records a cash-flow entry with its receipts.
// Only the sides the kind uses are read: to for inflows, from for outflows.
type AddStoreTransactionCommand struct { //nolint:recvcheck //using for validation
	transaction store.Transaction
	attachments []ports.File

	guard guard.ConstructorGuard
}

func NewAddStoreTransactionCommand(
	kind store.Kind, from, to store.Target, amount kernel.Money, remark string, at *time.Time, attachments []ports.File,
) (AddStoreTransactionCommand, error) {
	var (
		transaction store.Transaction
		err         error
	)
	switch kind {
	case store.Inflow:
		transaction, err = store.NewInflow(to, amount, remark, at)
	case store.Outflow:
		transaction, err = store.NewOutflow(from, amount, remark, at)
	case store.Transfer:
		transaction, err = store.NewTransfer(from, to, amount, remark, at)
	default:
		_, err = store.ParseKind(kind.String())
	}
	if err != nil {
		return AddStoreTransactionCommand{}, err
	}
	return AddStoreTransactionCommand{
		transaction: transaction,
		attachments: attachments,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c AddStoreTransactionCommand) Validate() error {
	return c.guard.Validate(ErrAddStoreTransactionCommandIsNotConstructed)
}

func (c AddStoreTransactionCommand) Transaction() store.Transaction { return c.transaction }

func (c AddStoreTransactionCommand) Attachments() []ports.File { return c.attachments }
