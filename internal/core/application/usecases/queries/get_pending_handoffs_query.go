package queries

import (
	"errors"
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/locker"
	"dashboard/internal/pkg/guard"
)

var (
	ErrGetPendingHandoffsQueryIsNotConstructed = errors.New(
		"GetPendingHandoffsQuery must be created via NewGetPendingHandoffsQuery constructor",
	)
)

// GetPendingHandoffsQuery lists locker units that were opened and are still
// waiting for the operator to confirm the door is closed.
type GetPendingHandoffsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPendingHandoffsQuery() GetPendingHandoffsQuery {
	return GetPendingHandoffsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPendingHandoffsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingHandoffsQueryIsNotConstructed)
}

type GetPendingHandoffsQueryResponse struct {
	ID         kernel.UUID
	Kind       locker.HandoffKind
	RequestID  kernel.ID
	OrderID    kernel.ID
	UnitID     kernel.ID
	UnitNumber int
	LockerName string
	OpenedAt   time.Time
}
