package requestrepo

import (
	"context"
	"errors"
	"fmt"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/request"
	"dashboard/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRequestRepository implements RequestRepository using GORM.
type GormRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id fmt.Stringer, aggregate any)
}

// NewGormRequestRepository creates a new GORM request repository.
func NewGormRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormRequestRepository {
	return &GormRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save replaces the stored copy of the request, its orders and its list entry.
// Callers run it inside a unit of work so the three writes land together.
func (r *GormRequestRepository) Save(ctx context.Context, aggregate *request.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	orders := dto.Orders
	dto.Orders = nil

	db := r.db.WithContext(ctx)
	if err := db.Where("request_id = ?", dto.ID).Delete(&OrderDTO{}).Error; err != nil {
		return err
	}
	if err := db.Omit(clause.Associations).Save(&dto).Error; err != nil {
		return err
	}
	if len(orders) > 0 {
		if err := db.Create(&orders).Error; err != nil {
			return err
		}
	}

	summary := summaryFromDomain(request.Summarize(aggregate))
	if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&summary).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ReplaceSummaries swaps the whole request list. Detailed copies stay.
func (r *GormRequestRepository) ReplaceSummaries(ctx context.Context, summaries []request.Summary) error {
	db := r.db.WithContext(ctx)
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&SummaryDTO{}).Error; err != nil {
		return err
	}
	if len(summaries) == 0 {
		return nil
	}

	dtos := make([]SummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		dtos = append(dtos, summaryFromDomain(s))
	}
	return db.Create(&dtos).Error
}

// Get retrieves a detailed request by ID.
func (r *GormRequestRepository) Get(ctx context.Context, id kernel.ID) (*request.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	err := r.db.WithContext(ctx).
		Preload("Orders", func(db *gorm.DB) *gorm.DB { return db.Order("time, id") }).
		First(&dto, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("requestId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves the detailed request that owns an order.
func (r *GormRequestRepository) GetByOrder(ctx context.Context, orderID kernel.ID) (*request.Request, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var o OrderDTO
	if err := r.db.WithContext(ctx).Select("request_id").First(&o, "id = ?", orderID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
		}
		return nil, err
	}

	requestID, err := kernel.NewID(o.RequestID)
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, requestID)
}
