package commands

import (
	"context"
)

// ExpireHandoffsCommandHandler abandons stale handoffs in one transaction.
// The orders stay where they were; only confirmed handoffs move orders.
type ExpireHandoffsCommandHandler struct {
	uowFactory UoWFactory
}

func NewExpireHandoffsCommandHandler(uowFactory UoWFactory) ExpireHandoffsCommandHandler {
	return ExpireHandoffsCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of abandoned handoffs.
func (h ExpireHandoffsCommandHandler) Handle(ctx context.Context, command ExpireHandoffsCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.HandoffRepository()
	opened, err := repo.GetAllOpened(ctx)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, handoff := range opened {
		if !handoff.IsExpired(command.Now(), command.TTL()) {
			continue
		}
		if err = handoff.Abandon(command.Now()); err != nil {
			return 0, err
		}
		if err = repo.Update(ctx, handoff); err != nil {
			return 0, err
		}
		expired++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return expired, nil
}
