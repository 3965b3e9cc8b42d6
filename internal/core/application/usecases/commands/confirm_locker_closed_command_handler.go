package commands

import (
	"context"
	"time"

	"dashboard/internal/core/domain/model/request"
	"dashboard/internal/core/ports"
)

// ConfirmLockerClosedCommandHandler completes a handoff. When the remote
// rejects the confirmation the handoff stays unit-opened and can be retried.
type ConfirmLockerClosedCommandHandler struct {
	gateway    ports.OrderGateway
	uowFactory UoWFactory
	refresher  Refresher
	guard      *ActionGuard
}

func NewConfirmLockerClosedCommandHandler(
	gateway ports.OrderGateway, uowFactory UoWFactory, refresher Refresher, guard *ActionGuard,
) ConfirmLockerClosedCommandHandler {
	return ConfirmLockerClosedCommandHandler{gateway: gateway, uowFactory: uowFactory, refresher: refresher, guard: guard}
}

func (h ConfirmLockerClosedCommandHandler) Handle(ctx context.Context, command ConfirmLockerClosedCommand) (*request.Request, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	handoff, err := uow.HandoffRepository().GetOpenedByUnit(ctx, command.LockerUnitID())
	if err != nil {
		return nil, err
	}

	release, err := h.guard.Acquire(handoff.OrderID().String())
	if err != nil {
		return nil, err
	}
	defer release()

	if err = h.gateway.ConfirmCloseLocker(ctx, command.LockerUnitID()); err != nil {
		return nil, err
	}
	if err = handoff.ConfirmClosed(time.Now()); err != nil {
		return nil, err
	}

	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.HandoffRepository().Update(ctx, handoff); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return h.refresher.Refresh(ctx, handoff.RequestID())
}
