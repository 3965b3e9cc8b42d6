// Package postgres provides the GORM implementation of the read model unit of
// work. A unit of work hands out repositories bound to its transaction once
// Begin was called, and to the plain connection before that.
//
// Usage:
//
//	uow := NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.RequestRepository().Save(ctx, fetched); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance is meant for a single goroutine; concurrent
// operations create their own.
package postgres

import (
	"context"
	"fmt"

	"dashboard/internal/adapters/out/postgres/handoffrepo"
	"dashboard/internal/adapters/out/postgres/requestrepo"
	"dashboard/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        string
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh unit of work with no transaction and nothing tracked.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one read model transaction and records which
// aggregates it wrote.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction. Returns gorm.ErrInvalidTransaction when
// none is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction and forgets what was tracked in it.
// Returns gorm.ErrInvalidTransaction when none is open, which makes the usual
// deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// RequestRepository returns a request repository bound to the current
// transaction, or to the connection when no transaction is open.
func (uow *GormUnitOfWork) RequestRepository() ports.RequestRepository {
	return requestrepo.NewGormRequestRepository(uow.conn(), uow)
}

// HandoffRepository returns a handoff repository bound to the current
// transaction, or to the connection when no transaction is open.
func (uow *GormUnitOfWork) HandoffRepository() ports.HandoffRepository {
	return handoffrepo.NewGormHandoffRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written by one of the repositories.
func (uow *GormUnitOfWork) TrackAggregate(id fmt.Stringer, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id.String(),
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// Migrate creates or updates the read model tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&requestrepo.RequestDTO{},
		&requestrepo.OrderDTO{},
		&requestrepo.SummaryDTO{},
		&handoffrepo.HandoffDTO{},
	)
}
