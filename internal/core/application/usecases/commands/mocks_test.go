package commands_test

import (
	"context"
	"time"

	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/core/domain/model/catalog"
	"dashboard/internal/core/domain/model/customer"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/locker"
	"dashboard/internal/core/domain/model/request"
	"dashboard/internal/core/domain/model/store"
	"dashboard/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockGateway struct{ mock.Mock }

func (m *MockGateway) DisplayRequests(ctx context.Context) ([]request.Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]request.Summary), args.Error(1)
}

func (m *MockGateway) DisplayRequest(ctx context.Context, id kernel.ID) (*request.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
}

func (m *MockGateway) AddRequest(ctx context.Context, input ports.NewRequestInput) (kernel.ID, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockGateway) CancelRequest(ctx context.Context, id kernel.ID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGateway) AddRequestPayment(ctx context.Context, id kernel.ID, payment request.Payment) error {
	return m.Called(ctx, id, payment).Error(0)
}

func (m *MockGateway) UpdateRequestProducts(ctx context.Context, id kernel.ID, products []ports.ProductInput) error {
	return m.Called(ctx, id, products).Error(0)
}

func (m *MockGateway) AddRequestPickUpTime(ctx context.Context, id kernel.ID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *MockGateway) UpdateRequestRemark(ctx context.Context, id kernel.ID, remark string) error {
	return m.Called(ctx, id, remark).Error(0)
}

func (m *MockGateway) SendEmail(ctx context.Context, email ports.Email) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockGateway) RequestRetrieveStore(ctx context.Context, orderID kernel.ID) (locker.Layout, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(locker.Layout), args.Error(1)
}

func (m *MockGateway) DeliverBackLocker(ctx context.Context, orderID kernel.ID) (locker.Layout, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(locker.Layout), args.Error(1)
}

func (m *MockGateway) ConfirmCloseLocker(ctx context.Context, lockerUnitID kernel.ID) error {
	return m.Called(ctx, lockerUnitID).Error(0)
}

func (m *MockGateway) AddBeforeImages(ctx context.Context, orderID kernel.ID, images []ports.File) error {
	return m.Called(ctx, orderID, images).Error(0)
}

func (m *MockGateway) AddAfterImages(ctx context.Context, orderID kernel.ID, images []ports.File) error {
	return m.Called(ctx, orderID, images).Error(0)
}

func (m *MockGateway) UpdateServiceStatus(ctx context.Context, orderID kernel.ID, servicesDone []kernel.ID) error {
	return m.Called(ctx, orderID, servicesDone).Error(0)
}

func (m *MockGateway) ConfirmRetrieve(ctx context.Context, orderID kernel.ID) error {
	return m.Called(ctx, orderID).Error(0)
}

func (m *MockGateway) UndoOrder(ctx context.Context, orderID kernel.ID) error {
	return m.Called(ctx, orderID).Error(0)
}

func (m *MockGateway) UpdateOrderServices(ctx context.Context, orderID kernel.ID, services []ports.ServiceInput) error {
	return m.Called(ctx, orderID, services).Error(0)
}

func (m *MockGateway) DisplayServices(ctx context.Context) ([]catalog.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Service), args.Error(1)
}

func (m *MockGateway) DisplayProducts(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

type MockRequestRepository struct{ mock.Mock }

func (m *MockRequestRepository) Save(ctx context.Context, r *request.Request) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRequestRepository) ReplaceSummaries(ctx context.Context, summaries []request.Summary) error {
	return m.Called(ctx, summaries).Error(0)
}

func (m *MockRequestRepository) Get(ctx context.Context, id kernel.ID) (*request.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
}

func (m *MockRequestRepository) GetByOrder(ctx context.Context, orderID kernel.ID) (*request.Request, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
}

type MockHandoffRepository struct{ mock.Mock }

func (m *MockHandoffRepository) Add(ctx context.Context, h *locker.Handoff) error {
	return m.Called(ctx, h).Error(0)
}

func (m *MockHandoffRepository) Update(ctx context.Context, h *locker.Handoff) error {
	return m.Called(ctx, h).Error(0)
}

func (m *MockHandoffRepository) Get(ctx context.Context, id kernel.UUID) (*locker.Handoff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*locker.Handoff), args.Error(1)
}

func (m *MockHandoffRepository) GetOpenedByUnit(ctx context.Context, unitID kernel.ID) (*locker.Handoff, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*locker.Handoff), args.Error(1)
}

func (m *MockHandoffRepository) GetOpenedByOrder(ctx context.Context, orderID kernel.ID) (*locker.Handoff, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*locker.Handoff), args.Error(1)
}

func (m *MockHandoffRepository) GetAllOpened(ctx context.Context) ([]*locker.Handoff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*locker.Handoff), args.Error(1)
}

// MockUoW serves both the request-only and the cross-aggregate unit of work.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

func (m *MockUoW) HandoffRepository() ports.HandoffRepository {
	args := m.Called()
	return args.Get(0).(ports.HandoffRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockRequestUoWFactory struct{ mock.Mock }

func (m *MockRequestUoWFactory) Create() commands.RequestUoW {
	args := m.Called()
	return args.Get(0).(commands.RequestUoW)
}

type MockRefresher struct{ mock.Mock }

func (m *MockRefresher) Refresh(ctx context.Context, id kernel.ID) (*request.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
}

type MockStoreGateway struct{ mock.Mock }

func (m *MockStoreGateway) DisplayStores(ctx context.Context) ([]store.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Store), args.Error(1)
}

func (m *MockStoreGateway) DisplayStore(ctx context.Context, id kernel.ID, after, before time.Time) (store.Detail, error) {
	args := m.Called(ctx, id, after, before)
	return args.Get(0).(store.Detail), args.Error(1)
}

func (m *MockStoreGateway) AddTransaction(ctx context.Context, transaction store.Transaction, attachments []ports.File) error {
	return m.Called(ctx, transaction, attachments).Error(0)
}

type MockCustomerGateway struct{ mock.Mock }

func (m *MockCustomerGateway) DisplayUsers(ctx context.Context) ([]customer.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]customer.Customer), args.Error(1)
}

func (m *MockCustomerGateway) AddUser(ctx context.Context, profile customer.Profile) (customer.Customer, error) {
	args := m.Called(ctx, profile)
	return args.Get(0).(customer.Customer), args.Error(1)
}
