package commands

import (
	"context"
	"time"

	"dashboard/internal/core/ports"
)

// AddStoreTransactionCommandHandler reads the source balance before anything
// is sent, so an outgoing amount the source cannot cover never reaches the
// remote.
type AddStoreTransactionCommandHandler struct {
	gateway ports.StoreGateway
}

func NewAddStoreTransactionCommandHandler(gateway ports.StoreGateway) AddStoreTransactionCommandHandler {
	return AddStoreTransactionCommandHandler{gateway: gateway}
}

func (h AddStoreTransactionCommandHandler) Handle(ctx context.Context, command AddStoreTransactionCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	transaction := command.Transaction()
	if from, ok := transaction.From(); ok {
		// An empty window loads the balances only.
		now := time.Now()
		source, err := h.gateway.DisplayStore(ctx, from.StoreID, now, now)
		if err != nil {
			return err
		}
		if err = source.CanFund(transaction); err != nil {
			return err
		}
	}

	return h.gateway.AddTransaction(ctx, transaction, command.Attachments())
}
