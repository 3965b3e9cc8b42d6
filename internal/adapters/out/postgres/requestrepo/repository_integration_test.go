package requestrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"dashboard/internal/adapters/out/postgres/requestrepo"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/domain/model/request"
	"dashboard/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var createdAt = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id fmt.Stringer, aggregate any) {
	m.Called(id, aggregate)
}

// RequestRepositoryIntegrationTestSuite checks that requests survive a round
// trip through PostgreSQL.
type RequestRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *requestrepo.GormRequestRepository
	tracker    *MockAggregateTracker
}

func (suite *RequestRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&requestrepo.RequestDTO{}, &requestrepo.OrderDTO{}, &requestrepo.SummaryDTO{}))
}

func (suite *RequestRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE requests, orders, request_summaries").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = requestrepo.NewGormRequestRepository(suite.db, suite.tracker)
}

func (suite *RequestRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RequestRepositoryIntegrationTestSuite) TestSave_RoundTrip() {
	ctx := context.Background()
	req := suite.createTestRequest("req_1", order.Deposited)

	suite.tracker.On("TrackAggregate", req.ID(), req).Once()

	suite.Require().NoError(suite.repository.Save(ctx, req))

	got, err := suite.repository.Get(ctx, req.ID())
	suite.Require().NoError(err)

	suite.Equal(req.ID(), got.ID())
	suite.Equal(req.Type(), got.Type())
	suite.True(req.Time().Equal(got.Time()))
	suite.Equal(req.Orderer(), got.Orderer())
	suite.Equal(req.Store(), got.Store())
	suite.Equal(req.Status(), got.Status())
	suite.Equal(req.Invoice().Number, got.Invoice().Number)
	suite.Equal(req.Remark(), got.Remark())
	suite.Require().NotNil(got.PickUpTime())
	suite.True(req.PickUpTime().Equal(*got.PickUpTime()))
	suite.True(req.Price().IsEqual(got.Price()))
	suite.True(req.Paid().IsEqual(got.Paid()))
	suite.Len(got.Products(), 1)
	suite.Len(got.Payments(), 1)

	suite.Require().Len(got.Orders(), 2)
	first := got.Orders()[0]
	suite.Equal("ord_req_1_a", first.ID().String())
	suite.Equal(order.Deposited, first.Status())
	suite.Len(first.Events(), len(req.Orders()[0].Events()))
	suite.Len(first.ImagesBefore(), 1)
	suite.Len(first.Services(), 1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RequestRepositoryIntegrationTestSuite) TestSave_ReplacesOrders() {
	ctx := context.Background()
	req := suite.createTestRequest("req_1", order.Deposited)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Save(ctx, req))

	updated := suite.createTestRequest("req_1", order.RetrievedStore)
	suite.Require().NoError(suite.repository.Save(ctx, updated))

	got, err := suite.repository.Get(ctx, req.ID())
	suite.Require().NoError(err)
	suite.Require().Len(got.Orders(), 2)
	suite.Equal(order.RetrievedStore, got.Orders()[0].Status())

	var count int64
	suite.Require().NoError(suite.db.Model(&requestrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(2), count)
	suite.Require().NoError(suite.db.Model(&requestrepo.SummaryDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *RequestRepositoryIntegrationTestSuite) TestSave_InvalidRequest() {
	var req *request.Request

	err := suite.repository.Save(context.Background(), req)

	suite.Require().ErrorIs(err, request.ErrRequestIsNotConstructed)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *RequestRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.MustNewID("req_missing"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RequestRepositoryIntegrationTestSuite) TestGetByOrder() {
	ctx := context.Background()
	req := suite.createTestRequest("req_1", order.Deposited)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Save(ctx, req))

	got, err := suite.repository.GetByOrder(ctx, kernel.MustNewID("ord_req_1_b"))
	suite.Require().NoError(err)
	suite.Equal(req.ID(), got.ID())

	_, err = suite.repository.GetByOrder(ctx, kernel.MustNewID("ord_missing"))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RequestRepositoryIntegrationTestSuite) TestReplaceSummaries() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Save(ctx, suite.createTestRequest("req_1", order.Deposited)))

	fresh := request.Summarize(suite.createTestRequest("req_2", order.Deposited))
	suite.Require().NoError(suite.repository.ReplaceSummaries(ctx, []request.Summary{fresh}))

	var ids []string
	suite.Require().NoError(suite.db.Model(&requestrepo.SummaryDTO{}).Pluck("id", &ids).Error)
	suite.Equal([]string{"req_2"}, ids)

	_, err := suite.repository.Get(ctx, kernel.MustNewID("req_1"))
	suite.Require().NoError(err, "detailed copies are kept")

	suite.Require().NoError(suite.repository.ReplaceSummaries(ctx, nil))
	suite.Require().NoError(suite.db.Model(&requestrepo.SummaryDTO{}).Pluck("id", &ids).Error)
	suite.Empty(ids)
}

func (suite *RequestRepositoryIntegrationTestSuite) createTestRequest(id string, status order.Status) *request.Request {
	line, err := order.NewServiceOrdered(kernel.MustNewID("svc_deep"), order.MainService, "Deep Clean", kernel.MustMoney("35"), false)
	suite.Require().NoError(err)

	events := []order.Event{{Kind: order.Created, Time: createdAt, Status: order.OpenedLocker}}
	for i, s := range []order.Status{order.Deposited, order.RetrievedStore} {
		events = append(events, order.Event{Kind: order.Updated, Time: createdAt.Add(time.Duration(i+1) * time.Hour), Status: s})
		if s == status {
			break
		}
	}

	first, err := order.RestoreOrder(order.RestoreParams{
		ID:           kernel.MustNewID("ord_" + id + "_a"),
		Name:         "Air Max 90",
		Type:         order.Locker,
		Status:       status,
		Time:         createdAt,
		Services:     []order.ServiceOrdered{line},
		ImagesBefore: []order.Image{{ID: "img_1", ContentType: "image/jpeg", URL: "https://cdn.example.com/img_1.jpg"}},
		Events:       events,
	})
	suite.Require().NoError(err)

	second, err := order.NewOrder(kernel.MustNewID("ord_"+id+"_b"), "Jordan 1", order.Locker, []order.ServiceOrdered{line}, createdAt.Add(time.Minute))
	suite.Require().NoError(err)

	product, err := request.NewProductLine(kernel.MustNewID("prd_1"), "Shoe Bag", 2, kernel.MustMoney("4.50"))
	suite.Require().NoError(err)
	payment, err := request.NewPayment(request.Cash, kernel.MustMoney("20"), "", createdAt)
	suite.Require().NoError(err)
	pickUp := createdAt.Add(48 * time.Hour)

	req, err := request.RestoreRequest(request.RestoreParams{
		ID:         kernel.MustNewID(id),
		Type:       order.Locker,
		Time:       createdAt,
		Orderer:    request.Orderer{ID: kernel.MustNewID("usr_1"), DisplayName: "Dana", Email: "dana@example.com"},
		Store:      request.Store{ID: kernel.MustNewID("str_1"), Name: "Central"},
		Status:     request.InProgress,
		Orders:     []*order.Order{first, second},
		Products:   []request.ProductLine{product},
		Invoice:    request.Invoice{Number: 1042, Time: createdAt},
		Payments:   []request.Payment{payment},
		PickUpTime: &pickUp,
		Remark:     "left lace frayed",
	})
	suite.Require().NoError(err)
	return req
}

func TestRequestRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(RequestRepositoryIntegrationTestSuite))
}
