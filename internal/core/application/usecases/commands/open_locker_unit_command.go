package commands

import (
	"errors"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/guard"
)

var ErrOpenLockerUnitCommandIsNotConstructed = errors.New(
	"OpenLockerUnitCommand must be created via NewOpenLockerUnitCommand constructor",
)

// OpenLockerUnitCommand is phase one of retrieve-from-locker and
// deliver-to-locker: ask the remote to open a unit for the order.
//
// Example:
//
//	cmd, err := NewOpenLockerUnitCommand(orderID)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	// show result.Layout, then confirm with ConfirmLockerClosedCommand
type OpenLockerUnitCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewOpenLockerUnitCommand(orderID kernel.ID) (OpenLockerUnitCommand, error) {
	if err := orderID.Validate(); err != nil {
		return OpenLockerUnitCommand{}, err
	}
	return OpenLockerUnitCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c OpenLockerUnitCommand) Validate() error {
	return c.guard.Validate(ErrOpenLockerUnitCommandIsNotConstructed)
}

func (c OpenLockerUnitCommand) OrderID() kernel.ID {
	return c.orderID
}
