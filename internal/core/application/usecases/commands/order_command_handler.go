package commands

import (
	"context"

	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/domain/model/request"
	"dashboard/internal/core/ports"
)

type ConfirmRetrievalCommandHandler struct {
	gateway ports.OrderGateway
	runner  actionRunner
}

func NewConfirmRetrievalCommandHandler(
	gateway ports.OrderGateway, uowFactory RequestUoWFactory, refresher Refresher, guard *ActionGuard,
) ConfirmRetrievalCommandHandler {
	return ConfirmRetrievalCommandHandler{
		gateway: gateway,
		runner:  actionRunner{uowFactory: uowFactory, refresher: refresher, guard: guard},
	}
}

func (h ConfirmRetrievalCommandHandler) Handle(ctx context.Context, command ConfirmRetrievalCommand) (*request.Request, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return h.runner.runOnOrder(ctx, command.OrderID(),
		func(_ *request.Request, o *order.Order) error {
			return o.ValidateAction(order.ConfirmRetrieval)
		},
		func(ctx context.Context) error {
			return h.gateway.ConfirmRetrieve(ctx, command.OrderID())
		},
	)
}

type UndoOrderCommandHandler struct {
	gateway ports.OrderGateway
	runner  actionRunner
}

func NewUndoOrderCommandHandler(
	gateway ports.OrderGateway, uowFactory RequestUoWFactory, refresher Refresher, guard *ActionGuard,
) UndoOrderCommandHandler {
	return UndoOrderCommandHandler{
		gateway: gateway,
		runner:  actionRunner{uowFactory: uowFactory, refresher: refresher, guard: guard},
	}
}

func (h UndoOrderCommandHandler) Handle(ctx context.Context, command UndoOrderCommand) (*request.Request, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return h.runner.runOnOrder(ctx, command.OrderID(),
		func(_ *request.Request, o *order.Order) error {
			if !o.CanUndo() {
				return order.ErrNothingToUndo
			}
			return nil
		},
		func(ctx context.Context) error {
			return h.gateway.UndoOrder(ctx, command.OrderID())
		},
	)
}
