package commands

import (
	"errors"
	"slices"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/services"
	"dashboard/internal/pkg/errs"
	"dashboard/internal/pkg/guard"
)

var (
	ErrCreateRequestCommandIsNotConstructed = errors.New(
		"CreateRequestCommand must be created via NewCreateRequestCommand constructor",
	)
	ErrNoCustomerChosen = errs.NewValueIsRequiredError("please select a customer first")
	ErrNoOrderAdded     = errs.NewValueIsRequiredError("please add in at least one order first")
)

// OrderChoice is one garment of a new request with its chosen services.
type OrderChoice struct {
	Name     string
	Services []services.Choice
}

// CreateRequestCommand opens a new orders request at a store for a customer.
//
// Example:
//
//	cmd, err := NewCreateRequestCommand(storeID, customerID,
//	    []OrderChoice{{Name: "Air Max 90", Services: []services.Choice{{ID: deepClean}}}},
//	    nil,
//	)
type CreateRequestCommand struct { //nolint:recvcheck //using for validation
	storeID   kernel.ID
	ordererID kernel.ID
	orders    []OrderChoice
	products  []services.Choice

	guard guard.ConstructorGuard
}

func NewCreateRequestCommand(
	storeID, ordererID kernel.ID, orders []OrderChoice, products []services.Choice,
) (CreateRequestCommand, error) {
	c := CreateRequestCommand{products: slices.Clone(products), guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		c.setStoreID(storeID),
		c.setOrdererID(ordererID),
		c.setOrders(orders),
	); err != nil {
		return CreateRequestCommand{}, err
	}
	return c, nil
}

func (c CreateRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateRequestCommandIsNotConstructed)
}

func (c CreateRequestCommand) StoreID() kernel.ID          { return c.storeID }
func (c CreateRequestCommand) OrdererID() kernel.ID        { return c.ordererID }
func (c CreateRequestCommand) Orders() []OrderChoice       { return slices.Clone(c.orders) }
func (c CreateRequestCommand) Products() []services.Choice { return slices.Clone(c.products) }

func (c *CreateRequestCommand) setStoreID(storeID kernel.ID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}
	c.storeID = storeID
	return nil
}

func (c *CreateRequestCommand) setOrdererID(ordererID kernel.ID) error {
	if ordererID.Validate() != nil {
		return ErrNoCustomerChosen
	}
	c.ordererID = ordererID
	return nil
}

func (c *CreateRequestCommand) setOrders(orders []OrderChoice) error {
	if len(orders) == 0 {
		return ErrNoOrderAdded
	}
	c.orders = slices.Clone(orders)
	return nil
}
