package handoffrepo

import (
	"context"
	"errors"
	"fmt"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/locker"
	"dashboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHandoffRepository implements HandoffRepository using GORM.
type GormHandoffRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id fmt.Stringer, aggregate any)
}

func NewGormHandoffRepository(db *gorm.DB, tracker aggregateTracker) *GormHandoffRepository {
	return &GormHandoffRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new handoff.
func (r *GormHandoffRepository) Add(ctx context.Context, aggregate *locker.Handoff) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing handoff.
func (r *GormHandoffRepository) Update(ctx context.Context, aggregate *locker.Handoff) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&HandoffDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("handoffId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a handoff by ID.
func (r *GormHandoffRepository) Get(ctx context.Context, id kernel.UUID) (*locker.Handoff, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "handoffId", id.String(), "id = ?", id.Value())
}

// GetOpenedByUnit retrieves the handoff waiting for the unit door to close.
func (r *GormHandoffRepository) GetOpenedByUnit(ctx context.Context, unitID kernel.ID) (*locker.Handoff, error) {
	if err := unitID.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "lockerUnitId", unitID.String(),
		"unit_id = ? AND state = ?", unitID.String(), locker.UnitOpened.String())
}

// GetOpenedByOrder retrieves the unconfirmed handoff of an order.
func (r *GormHandoffRepository) GetOpenedByOrder(ctx context.Context, orderID kernel.ID) (*locker.Handoff, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "orderId", orderID.String(),
		"order_id = ? AND state = ?", orderID.String(), locker.UnitOpened.String())
}

// GetAllOpened retrieves every handoff still in unit-opened state, oldest first.
func (r *GormHandoffRepository) GetAllOpened(ctx context.Context) ([]*locker.Handoff, error) {
	var dtos []HandoffDTO
	if err := r.db.WithContext(ctx).Order("opened_at").
		Find(&dtos, "state = ?", locker.UnitOpened.String()).Error; err != nil {
		return nil, err
	}

	handoffs := make([]*locker.Handoff, 0, len(dtos))
	for _, dto := range dtos {
		h, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		handoffs = append(handoffs, h)
	}
	return handoffs, nil
}

// first returns the most recently opened match.
func (r *GormHandoffRepository) first(
	ctx context.Context, param, value string, query string, args ...any,
) (*locker.Handoff, error) {
	var dto HandoffDTO
	err := r.db.WithContext(ctx).Where(query, args...).Order("opened_at DESC").First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, value)
		}
		return nil, err
	}
	return toDomain(dto)
}
