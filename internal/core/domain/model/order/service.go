package order

import (
	"errors"
	"fmt"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/errs"
	"dashboard/internal/pkg/guard"
)

var ErrServiceOrderedIsNotConstructed = errors.New("ServiceOrdered must be created via NewServiceOrdered")

// ServiceKind separates the main service of an order from add-ons.
type ServiceKind int

const (
	UnknownServiceKind ServiceKind = iota
	MainService
	AdditionalService
)

var serviceKindNames = map[ServiceKind]string{
	MainService:       "main",
	AdditionalService: "additional",
}

func ParseServiceKind(s string) (ServiceKind, error) {
	for kind, name := range serviceKindNames {
		if name == s {
			return kind, nil
		}
	}
	return UnknownServiceKind, errs.NewValueIsInvalidErrorWithCause(
		"service type is invalid", fmt.Errorf("%q is not a service type", s))
}

func (k ServiceKind) String() string {
	if name, ok := serviceKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ServiceOrdered is one service line of an order with the price agreed with
// the customer. Done only ever flips from false to true.
type ServiceOrdered struct { //nolint:recvcheck //using for validation
	id            kernel.ID
	kind          ServiceKind
	name          string
	assignedPrice kernel.Money
	done          bool

	guard guard.ConstructorGuard
}

func NewServiceOrdered(id kernel.ID, kind ServiceKind, name string, assignedPrice kernel.Money, done bool) (ServiceOrdered, error) {
	if err := id.Validate(); err != nil {
		return ServiceOrdered{}, err
	}
	if _, ok := serviceKindNames[kind]; !ok {
		return ServiceOrdered{}, errs.NewValueIsInvalidErrorWithCause(
			"service type is invalid", fmt.Errorf("%d is not a valid service type", kind))
	}
	return ServiceOrdered{
		id:            id,
		kind:          kind,
		name:          name,
		assignedPrice: assignedPrice,
		done:          done,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (s ServiceOrdered) Validate() error {
	return s.guard.Validate(ErrServiceOrderedIsNotConstructed)
}

func (s ServiceOrdered) ID() kernel.ID               { return s.id }
func (s ServiceOrdered) Kind() ServiceKind           { return s.kind }
func (s ServiceOrdered) Name() string                { return s.name }
func (s ServiceOrdered) AssignedPrice() kernel.Money { return s.assignedPrice }
func (s ServiceOrdered) Done() bool                  { return s.done }

func (s ServiceOrdered) markDone() ServiceOrdered {
	s.done = true
	return s
}
