package commands

import (
	"errors"
	"slices"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/domain/services"
	"dashboard/internal/pkg/guard"
)

var ErrUpdateOrderServicesCommandIsNotConstructed = errors.New(
	"UpdateOrderServicesCommand must be created via NewUpdateOrderServicesCommand constructor",
)

// UpdateOrderServicesCommand replaces the service lines of an order.
type UpdateOrderServicesCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.ID
	services []services.Choice

	guard guard.ConstructorGuard
}

func NewUpdateOrderServicesCommand(orderID kernel.ID, choices []services.Choice) (UpdateOrderServicesCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderServicesCommand{}, err
	}
	if len(choices) == 0 {
		return UpdateOrderServicesCommand{}, order.ErrNoServiceChosen
	}
	return UpdateOrderServicesCommand{
		orderID:  orderID,
		services: slices.Clone(choices),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderServicesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderServicesCommandIsNotConstructed)
}

func (c UpdateOrderServicesCommand) OrderID() kernel.ID          { return c.orderID }
func (c UpdateOrderServicesCommand) Services() []services.Choice { return slices.Clone(c.services) }
