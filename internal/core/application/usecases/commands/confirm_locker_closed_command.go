package commands

import (
	"errors"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/guard"
)

var ErrConfirmLockerClosedCommandIsNotConstructed = errors.New(
	"ConfirmLockerClosedCommand must be created via NewConfirmLockerClosedCommand constructor",
)

// ConfirmLockerClosedCommand is phase two: the operator closed the unit door.
type ConfirmLockerClosedCommand struct { //nolint:recvcheck //using for validation
	lockerUnitID kernel.ID

	guard guard.ConstructorGuard
}

func NewConfirmLockerClosedCommand(lockerUnitID kernel.ID) (ConfirmLockerClosedCommand, error) {
	if err := lockerUnitID.Validate(); err != nil {
		return ConfirmLockerClosedCommand{}, err
	}
	return ConfirmLockerClosedCommand{lockerUnitID: lockerUnitID, guard: guard.NewConstructorGuard()}, nil
}

func (c ConfirmLockerClosedCommand) Validate() error {
	return c.guard.Validate(ErrConfirmLockerClosedCommandIsNotConstructed)
}

func (c ConfirmLockerClosedCommand) LockerUnitID() kernel.ID {
	return c.lockerUnitID
}
