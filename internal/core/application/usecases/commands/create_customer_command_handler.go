package commands

import (
	"context"

	"dashboard/internal/core/domain/model/customer"
	"dashboard/internal/core/ports"
)

// CreateCustomerCommandHandler registers the customer with the remote and
// returns it so a new request can be placed for them right away.
type CreateCustomerCommandHandler struct {
	gateway ports.CustomerGateway
}

func NewCreateCustomerCommandHandler(gateway ports.CustomerGateway) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{gateway: gateway}
}

func (h CreateCustomerCommandHandler) Handle(ctx context.Context, command CreateCustomerCommand) (customer.Customer, error) {
	if err := command.Validate(); err != nil {
		return customer.Customer{}, err
	}
	return h.gateway.AddUser(ctx, command.Profile())
}
