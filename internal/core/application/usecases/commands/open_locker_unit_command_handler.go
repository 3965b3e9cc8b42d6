package commands

import (
	"context"
	"errors"
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/locker"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"
)

// OpenLockerUnitResult is what the operator needs to find the open door.
type OpenLockerUnitResult struct {
	HandoffID kernel.UUID
	Action    order.Action
	Layout    locker.Layout
}

// OpenLockerUnitCommandHandler runs phase one of the locker protocol. It
// records a handoff in unit-opened state and leaves the order status alone:
// the order only moves once the door is confirmed closed.
type OpenLockerUnitCommandHandler struct {
	gateway    ports.OrderGateway
	uowFactory UoWFactory
	guard      *ActionGuard
}

func NewOpenLockerUnitCommandHandler(
	gateway ports.OrderGateway, uowFactory UoWFactory, guard *ActionGuard,
) OpenLockerUnitCommandHandler {
	return OpenLockerUnitCommandHandler{gateway: gateway, uowFactory: uowFactory, guard: guard}
}

func (h OpenLockerUnitCommandHandler) Handle(ctx context.Context, command OpenLockerUnitCommand) (OpenLockerUnitResult, error) {
	if err := command.Validate(); err != nil {
		return OpenLockerUnitResult{}, err
	}

	release, err := h.guard.Acquire(command.OrderID().String())
	if err != nil {
		return OpenLockerUnitResult{}, err
	}
	defer release()

	uow := h.uowFactory.Create()
	req, o, err := loadOrder(ctx, uow.RequestRepository(), command.OrderID())
	if err != nil {
		return OpenLockerUnitResult{}, err
	}

	action, _ := o.NextAction()
	kind, err := locker.HandoffKindFor(action)
	if err != nil {
		return OpenLockerUnitResult{}, err
	}

	handoff, err := locker.NewHandoff(kind, req.ID(), o.ID())
	if err != nil {
		return OpenLockerUnitResult{}, err
	}

	var layout locker.Layout
	switch kind {
	case locker.Retrieve:
		layout, err = h.gateway.RequestRetrieveStore(ctx, o.ID())
	case locker.Deliver:
		layout, err = h.gateway.DeliverBackLocker(ctx, o.ID())
	}
	if err != nil {
		return OpenLockerUnitResult{}, err
	}

	now := time.Now()
	if err = handoff.Open(layout, now); err != nil {
		return OpenLockerUnitResult{}, err
	}

	if err = uow.Begin(ctx); err != nil {
		return OpenLockerUnitResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	handoffRepo := uow.HandoffRepository()
	previous, err := handoffRepo.GetOpenedByOrder(ctx, o.ID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
	case err != nil:
		return OpenLockerUnitResult{}, err
	default:
		if err = previous.Abandon(now); err != nil {
			return OpenLockerUnitResult{}, err
		}
		if err = handoffRepo.Update(ctx, previous); err != nil {
			return OpenLockerUnitResult{}, err
		}
	}

	if err = handoffRepo.Add(ctx, handoff); err != nil {
		return OpenLockerUnitResult{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return OpenLockerUnitResult{}, err
	}

	return OpenLockerUnitResult{HandoffID: handoff.ID(), Action: action, Layout: layout}, nil
}
