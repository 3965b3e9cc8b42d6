package commands

import (
	"errors"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/guard"
)

var ErrRefreshRequestsCommandIsNotConstructed = errors.New(
	"RefreshRequestsCommand must be created via NewRefreshAllRequestsCommand or NewRefreshRequestCommand",
)

// RefreshRequestsCommand refetches either the whole request list or a single
// detailed request.
type RefreshRequestsCommand struct {
	requestID *kernel.ID

	guard guard.ConstructorGuard
}

func NewRefreshAllRequestsCommand() RefreshRequestsCommand {
	return RefreshRequestsCommand{guard: guard.NewConstructorGuard()}
}

func NewRefreshRequestCommand(requestID kernel.ID) (RefreshRequestsCommand, error) {
	if err := requestID.Validate(); err != nil {
		return RefreshRequestsCommand{}, err
	}
	return RefreshRequestsCommand{requestID: &requestID, guard: guard.NewConstructorGuard()}, nil
}

func (c RefreshRequestsCommand) Validate() error {
	return c.guard.Validate(ErrRefreshRequestsCommandIsNotConstructed)
}

// RequestID is nil for a refresh of the whole list.
func (c RefreshRequestsCommand) RequestID() *kernel.ID { return c.requestID }
