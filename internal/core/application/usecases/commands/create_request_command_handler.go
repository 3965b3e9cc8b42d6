package commands

import (
	"context"

	"dashboard/internal/core/domain/model/request"
	"dashboard/internal/core/domain/services"
	"dashboard/internal/core/ports"
)

// CreateRequestCommandHandler validates every order against the catalog,
// submits the request and fetches the created request into the read model.
type CreateRequestCommandHandler struct {
	gateway   ports.Gateway
	selector  services.ServiceSelector
	refresher Refresher
}

func NewCreateRequestCommandHandler(gateway ports.Gateway, refresher Refresher) CreateRequestCommandHandler {
	return CreateRequestCommandHandler{
		gateway:   gateway,
		selector:  services.NewServiceSelector(),
		refresher: refresher,
	}
}

func (h CreateRequestCommandHandler) Handle(ctx context.Context, command CreateRequestCommand) (*request.Request, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	cat, err := loadCatalog(ctx, h.gateway)
	if err != nil {
		return nil, err
	}

	input := ports.NewRequestInput{
		StoreID:   command.StoreID(),
		OrdererID: command.OrdererID(),
		Orders:    make([]ports.NewOrderInput, 0, len(command.Orders())),
	}
	for _, o := range command.Orders() {
		selections, selectErr := h.selector.SelectOrder(cat, o.Name, o.Services)
		if selectErr != nil {
			return nil, selectErr
		}
		input.Orders = append(input.Orders, ports.NewOrderInput{Name: o.Name, Services: serviceInputs(selections)})
	}

	products, err := h.selector.SelectProducts(cat, command.Products())
	if err != nil {
		return nil, err
	}
	input.Products = productInputs(products)

	id, err := h.gateway.AddRequest(ctx, input)
	if err != nil {
		return nil, err
	}
	return h.refresher.Refresh(ctx, id)
}
