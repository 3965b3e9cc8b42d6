package commands

import (
	"context"

	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/domain/model/request"
	"dashboard/internal/core/ports"
)

type AddOrderImagesCommandHandler struct {
	gateway ports.OrderGateway
	runner  actionRunner
}

func NewAddOrderImagesCommandHandler(
	gateway ports.OrderGateway, uowFactory RequestUoWFactory, refresher Refresher, guard *ActionGuard,
) AddOrderImagesCommandHandler {
	return AddOrderImagesCommandHandler{
		gateway: gateway,
		runner:  actionRunner{uowFactory: uowFactory, refresher: refresher, guard: guard},
	}
}

func (h AddOrderImagesCommandHandler) Handle(ctx context.Context, command AddOrderImagesCommand) (*request.Request, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return h.runner.runOnOrder(ctx, command.OrderID(),
		func(_ *request.Request, o *order.Order) error {
			return o.ValidateAction(command.Stage())
		},
		func(ctx context.Context) error {
			if command.Stage() == order.AddBeforeImages {
				return h.gateway.AddBeforeImages(ctx, command.OrderID(), command.Images())
			}
			return h.gateway.AddAfterImages(ctx, command.OrderID(), command.Images())
		},
	)
}
