package commands

import (
	"context"

	"dashboard/internal/core/domain/model/request"
	"dashboard/internal/core/domain/services"
	"dashboard/internal/core/ports"
)

// RequestCommandHandler handles the request level commands. They share the
// same shape: validate against the read model copy, send one mutation, then
// refetch the request.
type RequestCommandHandler struct {
	gateway  ports.Gateway
	selector services.ServiceSelector
	runner   actionRunner
}

func NewRequestCommandHandler(
	gateway ports.Gateway, uowFactory RequestUoWFactory, refresher Refresher, guard *ActionGuard,
) RequestCommandHandler {
	return RequestCommandHandler{
		gateway:  gateway,
		selector: services.NewServiceSelector(),
		runner:   actionRunner{uowFactory: uowFactory, refresher: refresher, guard: guard},
	}
}

func (h RequestCommandHandler) Cancel(ctx context.Context, command CancelRequestCommand) (*request.Request, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}
	return h.runner.runOnRequest(ctx, command.RequestID(),
		func(req *request.Request) error { return req.ValidateCancel(command.InvoiceNumber()) },
		func(ctx context.Context) error { return h.gateway.CancelRequest(ctx, command.RequestID()) },
	)
}

func (h RequestCommandHandler) AddPayment(ctx context.Context, command AddPaymentCommand) (*request.Request, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}
	return h.runner.runOnRequest(ctx, command.RequestID(),
		func(req *request.Request) error { return req.ValidatePayment(command.Payment()) },
		func(ctx context.Context) error {
			return h.gateway.AddRequestPayment(ctx, command.RequestID(), command.Payment())
		},
	)
}

func (h RequestCommandHandler) UpdateProducts(ctx context.Context, command UpdateProductsCommand) (*request.Request, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	var inputs []ports.ProductInput
	return h.runner.runOnRequest(ctx, command.RequestID(),
		func(req *request.Request) error {
			if err := req.ValidateMutable(); err != nil {
				return err
			}
			cat, err := loadCatalog(ctx, h.gateway)
			if err != nil {
				return err
			}
			selections, err := h.selector.SelectProducts(cat, command.Products())
			if err != nil {
				return err
			}
			inputs = productInputs(selections)
			return nil
		},
		func(ctx context.Context) error {
			return h.gateway.UpdateRequestProducts(ctx, command.RequestID(), inputs)
		},
	)
}

func (h RequestCommandHandler) UpdatePickUpTime(ctx context.Context, command UpdatePickUpTimeCommand) (*request.Request, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}
	return h.runner.runOnRequest(ctx, command.RequestID(),
		func(req *request.Request) error { return req.ValidatePickUpTime(command.Time()) },
		func(ctx context.Context) error {
			return h.gateway.AddRequestPickUpTime(ctx, command.RequestID(), command.Time())
		},
	)
}

func (h RequestCommandHandler) UpdateRemark(ctx context.Context, command UpdateRemarkCommand) (*request.Request, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}
	return h.runner.runOnRequest(ctx, command.RequestID(),
		func(req *request.Request) error { return req.ValidateMutable() },
		func(ctx context.Context) error {
			return h.gateway.UpdateRequestRemark(ctx, command.RequestID(), command.Remark())
		},
	)
}
