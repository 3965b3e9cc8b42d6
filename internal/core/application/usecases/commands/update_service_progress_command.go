package commands

import (
	"errors"
	"slices"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/pkg/guard"
)

var ErrUpdateServiceProgressCommandIsNotConstructed = errors.New(
	"UpdateServiceProgressCommand must be created via NewUpdateServiceProgressCommand constructor",
)

// UpdateServiceProgressCommand marks some pending services of an order done.
type UpdateServiceProgressCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.ID
	servicesDone []kernel.ID

	guard guard.ConstructorGuard
}

func NewUpdateServiceProgressCommand(orderID kernel.ID, servicesDone []kernel.ID) (UpdateServiceProgressCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateServiceProgressCommand{}, err
	}
	if len(servicesDone) == 0 {
		return UpdateServiceProgressCommand{}, order.ErrNoServiceChosen
	}
	return UpdateServiceProgressCommand{
		orderID:      orderID,
		servicesDone: slices.Clone(servicesDone),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateServiceProgressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateServiceProgressCommandIsNotConstructed)
}

func (c UpdateServiceProgressCommand) OrderID() kernel.ID        { return c.orderID }
func (c UpdateServiceProgressCommand) ServicesDone() []kernel.ID { return slices.Clone(c.servicesDone) }
