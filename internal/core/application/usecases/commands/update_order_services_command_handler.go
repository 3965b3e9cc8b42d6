package commands

import (
	"context"
	"fmt"

	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/domain/model/request"
	"dashboard/internal/core/domain/services"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"
)

type selection = services.Selection

// UpdateOrderServicesCommandHandler checks the order can still be edited,
// validates the choices against the current catalog and submits them.
type UpdateOrderServicesCommandHandler struct {
	gateway  ports.Gateway
	selector services.ServiceSelector
	runner   actionRunner
}

func NewUpdateOrderServicesCommandHandler(
	gateway ports.Gateway, uowFactory RequestUoWFactory, refresher Refresher, guard *ActionGuard,
) UpdateOrderServicesCommandHandler {
	return UpdateOrderServicesCommandHandler{
		gateway:  gateway,
		selector: services.NewServiceSelector(),
		runner:   actionRunner{uowFactory: uowFactory, refresher: refresher, guard: guard},
	}
}

func (h UpdateOrderServicesCommandHandler) Handle(
	ctx context.Context, command UpdateOrderServicesCommand,
) (*request.Request, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	var inputs []ports.ServiceInput
	return h.runner.runOnOrder(ctx, command.OrderID(),
		func(req *request.Request, o *order.Order) error {
			if err := req.ValidateMutable(); err != nil {
				return err
			}
			if !o.CanEditServices() {
				return errs.NewValueIsInvalidErrorWithCause(
					"services are invalid",
					fmt.Errorf("services of a %s order in %s status can no longer be changed", o.Type(), o.Status()),
				)
			}
			cat, err := loadCatalog(ctx, h.gateway)
			if err != nil {
				return err
			}
			selections, err := h.selector.SelectServices(cat, command.Services())
			if err != nil {
				return err
			}
			inputs = serviceInputs(selections)
			return nil
		},
		func(ctx context.Context) error {
			return h.gateway.UpdateOrderServices(ctx, command.OrderID(), inputs)
		},
	)
}
