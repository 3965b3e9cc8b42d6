package commands

import (
	"errors"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/guard"
)

var (
	ErrConfirmRetrievalCommandIsNotConstructed = errors.New(
		"ConfirmRetrievalCommand must be created via NewConfirmRetrievalCommand constructor",
	)
	ErrUndoOrderCommandIsNotConstructed = errors.New(
		"UndoOrderCommand must be created via NewUndoOrderCommand constructor",
	)
)

// ConfirmRetrievalCommand records that the customer collected a cleaned
// physical order at the counter.
type ConfirmRetrievalCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewConfirmRetrievalCommand(orderID kernel.ID) (ConfirmRetrievalCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ConfirmRetrievalCommand{}, err
	}
	return ConfirmRetrievalCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c ConfirmRetrievalCommand) Validate() error {
	return c.guard.Validate(ErrConfirmRetrievalCommandIsNotConstructed)
}

func (c ConfirmRetrievalCommand) OrderID() kernel.ID { return c.orderID }

// UndoOrderCommand reverts the most recent status change of an order.
type UndoOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewUndoOrderCommand(orderID kernel.ID) (UndoOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UndoOrderCommand{}, err
	}
	return UndoOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c UndoOrderCommand) Validate() error {
	return c.guard.Validate(ErrUndoOrderCommandIsNotConstructed)
}

func (c UndoOrderCommand) OrderID() kernel.ID { return c.orderID }
