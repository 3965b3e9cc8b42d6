package commands

import (
	"context"
	"errors"

	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/domain/model/request"
	"dashboard/internal/core/ports"
)

type UpdateServiceProgressCommandHandler struct {
	gateway ports.OrderGateway
	runner  actionRunner
}

func NewUpdateServiceProgressCommandHandler(
	gateway ports.OrderGateway, uowFactory RequestUoWFactory, refresher Refresher, guard *ActionGuard,
) UpdateServiceProgressCommandHandler {
	return UpdateServiceProgressCommandHandler{
		gateway: gateway,
		runner:  actionRunner{uowFactory: uowFactory, refresher: refresher, guard: guard},
	}
}

func (h UpdateServiceProgressCommandHandler) Handle(
	ctx context.Context, command UpdateServiceProgressCommand,
) (*request.Request, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return h.runner.runOnOrder(ctx, command.OrderID(),
		func(_ *request.Request, o *order.Order) error {
			return errors.Join(
				o.ValidateAction(order.UpdateServiceProgress),
				o.ValidateServicesDone(command.ServicesDone()),
			)
		},
		func(ctx context.Context) error {
			return h.gateway.UpdateServiceStatus(ctx, command.OrderID(), command.ServicesDone())
		},
	)
}
