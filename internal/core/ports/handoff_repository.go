package ports

import (
	"context"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/locker"
)

// HandoffRepository persists locker handoffs so phase two can be confirmed
// after a restart.
type HandoffRepository interface {
	Add(ctx context.Context, aggregate *locker.Handoff) error
	Update(ctx context.Context, aggregate *locker.Handoff) error
	Get(ctx context.Context, id kernel.UUID) (*locker.Handoff, error)

	// GetOpenedByUnit returns the handoff waiting for the unit to be closed.
	GetOpenedByUnit(ctx context.Context, unitID kernel.ID) (*locker.Handoff, error)

	// GetOpenedByOrder returns the handoff of the order that is still waiting
	// for confirmation, if any.
	GetOpenedByOrder(ctx context.Context, orderID kernel.ID) (*locker.Handoff, error)

	// GetAllOpened returns every handoff in unit-opened state.
	GetAllOpened(ctx context.Context) ([]*locker.Handoff, error)
}
