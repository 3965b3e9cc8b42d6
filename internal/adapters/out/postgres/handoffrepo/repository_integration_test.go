package handoffrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"dashboard/internal/adapters/out/postgres/handoffrepo"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/locker"
	"dashboard/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id fmt.Stringer, aggregate any) {
	m.Called(id, aggregate)
}

type HandoffRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *handoffrepo.GormHandoffRepository
	tracker    *MockAggregateTracker
}

func (suite *HandoffRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&handoffrepo.HandoffDTO{}))
}

func (suite *HandoffRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE locker_handoffs").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = handoffrepo.NewGormHandoffRepository(suite.db, suite.tracker)
}

func (suite *HandoffRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *HandoffRepositoryIntegrationTestSuite) TestAdd_IdleHandoff() {
	ctx := context.Background()
	h, err := locker.NewHandoff(locker.Deliver, kernel.MustNewID("req_1"), kernel.MustNewID("ord_1"))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, h))

	got, err := suite.repository.Get(ctx, h.ID())
	suite.Require().NoError(err)
	suite.Equal(locker.Idle, got.State())
	suite.Equal(locker.Deliver, got.Kind())
	suite.True(got.Layout().IsZero())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", h.ID(), h)
}

func (suite *HandoffRepositoryIntegrationTestSuite) TestAdd_OpenedHandoff_KeepsLayout() {
	ctx := context.Background()
	h := suite.openedHandoff("ord_1", time.Now())

	suite.Require().NoError(suite.repository.Add(ctx, h))

	got, err := suite.repository.Get(ctx, h.ID())
	suite.Require().NoError(err)
	suite.Equal(locker.UnitOpened, got.State())
	suite.Equal("unit_7", got.UnitID().String())
	suite.Equal(h.Layout().Unit().Cell(), got.Layout().Unit().Cell())
	suite.Equal("Central Locker", got.Layout().Locker().Name())
	suite.Len(got.Layout().Locker().Units(), 2)
}

func (suite *HandoffRepositoryIntegrationTestSuite) TestUpdate_ConfirmClosed() {
	ctx := context.Background()
	h := suite.openedHandoff("ord_1", time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, h))

	suite.Require().NoError(h.ConfirmClosed(time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, h))

	_, err := suite.repository.GetOpenedByUnit(ctx, kernel.MustNewID("unit_7"))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	got, err := suite.repository.Get(ctx, h.ID())
	suite.Require().NoError(err)
	suite.True(got.IsClosedConfirmed())
	suite.False(got.ClosedAt().IsZero())
}

func (suite *HandoffRepositoryIntegrationTestSuite) TestUpdate_Missing() {
	h := suite.openedHandoff("ord_1", time.Now())

	err := suite.repository.Update(context.Background(), h)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *HandoffRepositoryIntegrationTestSuite) TestGetOpened_Lookups() {
	ctx := context.Background()
	now := time.Now()
	older := suite.openedHandoff("ord_1", now.Add(-time.Hour))
	newer := suite.openedHandoff("ord_2", now)
	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, newer))

	byUnit, err := suite.repository.GetOpenedByUnit(ctx, kernel.MustNewID("unit_7"))
	suite.Require().NoError(err)
	suite.True(newer.ID().IsEqual(byUnit.ID()), "the most recent opening wins")

	byOrder, err := suite.repository.GetOpenedByOrder(ctx, kernel.MustNewID("ord_1"))
	suite.Require().NoError(err)
	suite.True(older.ID().IsEqual(byOrder.ID()))

	all, err := suite.repository.GetAllOpened(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.True(older.ID().IsEqual(all[0].ID()))
	suite.True(newer.ID().IsEqual(all[1].ID()))
}

func (suite *HandoffRepositoryIntegrationTestSuite) openedHandoff(orderID string, at time.Time) *locker.Handoff {
	var units []locker.Unit
	for i, col := range []int{1, 2} {
		cell, err := locker.NewCell(1, col)
		suite.Require().NoError(err)
		unit, err := locker.NewUnit(kernel.MustNewID(fmt.Sprintf("unit_%d", 6+i)), 6+i, cell)
		suite.Require().NoError(err)
		units = append(units, unit)
	}
	l, err := locker.NewLocker(kernel.MustNewID("lck_1"), "Central Locker", 1, 2, units)
	suite.Require().NoError(err)
	layout, err := locker.NewLayout(kernel.MustNewID("unit_7"), l)
	suite.Require().NoError(err)

	h, err := locker.NewHandoff(locker.Retrieve, kernel.MustNewID("req_1"), kernel.MustNewID(orderID))
	suite.Require().NoError(err)
	suite.Require().NoError(h.Open(layout, at))
	return h
}

func TestHandoffRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(HandoffRepositoryIntegrationTestSuite))
}
