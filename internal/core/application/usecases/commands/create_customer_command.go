package commands

import (
	"errors"

	"dashboard/internal/core/domain/model/customer"
	"dashboard/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	profile customer.Profile

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(displayName, mobileNumber, email, address string) (CreateCustomerCommand, error) {
	profile, err := customer.NewProfile(displayName, mobileNumber, email, address)
	if err != nil {
		return CreateCustomerCommand{}, err
	}
	return CreateCustomerCommand{profile: profile, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) Profile() customer.Profile { return c.profile }
