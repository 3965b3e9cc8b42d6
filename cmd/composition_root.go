package cmd

import (
	"log/slog"
	"net/http"

	"dashboard/internal/adapters/in/amqp"
	httpapi "dashboard/internal/adapters/in/http"
	"dashboard/internal/adapters/out/graphql"
	"dashboard/internal/adapters/out/postgres"
	"dashboard/internal/adapters/out/session"
	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/core/application/usecases/queries"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	session    *session.Provider
	gateway    *graphql.Gateway
	guard      *commands.ActionGuard
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	provider := session.NewProvider(config.SessionToken)

	client, err := graphql.NewClient(config.GraphQLBaseURL, &http.Client{Timeout: config.GraphQLTimeout}, provider)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		session:    provider,
		gateway:    graphql.NewGateway(client),
		guard:      commands.NewActionGuard(),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) requestUoW() commands.RequestUoWFactory {
	return FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) refresher() commands.RequestRefresher {
	return commands.NewRequestRefresher(c.gateway, c.requestUoW())
}

func (c *CompositionRoot) CreateRefreshRequestsCommandHandler() commands.RefreshRequestsCommandHandler {
	return commands.NewRefreshRequestsCommandHandler(c.refresher())
}

func (c *CompositionRoot) CreateCreateRequestCommandHandler() commands.CreateRequestCommandHandler {
	return commands.NewCreateRequestCommandHandler(c.gateway, c.refresher())
}

func (c *CompositionRoot) CreateRequestCommandHandler() commands.RequestCommandHandler {
	return commands.NewRequestCommandHandler(c.gateway, c.requestUoW(), c.refresher(), c.guard)
}

func (c *CompositionRoot) CreateSendInvoiceEmailCommandHandler() commands.SendInvoiceEmailCommandHandler {
	return commands.NewSendInvoiceEmailCommandHandler(c.gateway, c.requestUoW(), c.config.BrandName)
}

func (c *CompositionRoot) CreateOpenLockerUnitCommandHandler() commands.OpenLockerUnitCommandHandler {
	return commands.NewOpenLockerUnitCommandHandler(c.gateway, c.uow(), c.guard)
}

func (c *CompositionRoot) CreateConfirmLockerClosedCommandHandler() commands.ConfirmLockerClosedCommandHandler {
	return commands.NewConfirmLockerClosedCommandHandler(c.gateway, c.uow(), c.refresher(), c.guard)
}

func (c *CompositionRoot) CreateAddOrderImagesCommandHandler() commands.AddOrderImagesCommandHandler {
	return commands.NewAddOrderImagesCommandHandler(c.gateway, c.requestUoW(), c.refresher(), c.guard)
}

func (c *CompositionRoot) CreateUpdateServiceProgressCommandHandler() commands.UpdateServiceProgressCommandHandler {
	return commands.NewUpdateServiceProgressCommandHandler(c.gateway, c.requestUoW(), c.refresher(), c.guard)
}

func (c *CompositionRoot) CreateUpdateOrderServicesCommandHandler() commands.UpdateOrderServicesCommandHandler {
	return commands.NewUpdateOrderServicesCommandHandler(c.gateway, c.requestUoW(), c.refresher(), c.guard)
}

func (c *CompositionRoot) CreateConfirmRetrievalCommandHandler() commands.ConfirmRetrievalCommandHandler {
	return commands.NewConfirmRetrievalCommandHandler(c.gateway, c.requestUoW(), c.refresher(), c.guard)
}

func (c *CompositionRoot) CreateUndoOrderCommandHandler() commands.UndoOrderCommandHandler {
	return commands.NewUndoOrderCommandHandler(c.gateway, c.requestUoW(), c.refresher(), c.guard)
}

func (c *CompositionRoot) CreateAddStoreTransactionCommandHandler() commands.AddStoreTransactionCommandHandler {
	return commands.NewAddStoreTransactionCommandHandler(c.gateway)
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.gateway)
}

func (c *CompositionRoot) CreateExpireHandoffsCommandHandler() commands.ExpireHandoffsCommandHandler {
	return commands.NewExpireHandoffsCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateGetRequestsQueryHandler() queries.GetRequestsQueryHandler {
	return queries.NewGetRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRequestQueryHandler() queries.GetRequestQueryHandler {
	return queries.NewGetRequestQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetPendingHandoffsQueryHandler() queries.GetPendingHandoffsQueryHandler {
	return queries.NewGetPendingHandoffsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStoresQueryHandler() queries.GetStoresQueryHandler {
	return queries.NewGetStoresQueryHandler(c.gateway)
}

func (c *CompositionRoot) CreateGetStoreQueryHandler() queries.GetStoreQueryHandler {
	return queries.NewGetStoreQueryHandler(c.gateway)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.gateway)
}

// CreateServer wires every use case into the REST server. A store id that
// is not configured leaves new requests to name their store.
func (c *CompositionRoot) CreateServer() *httpapi.Server {
	var defaultStore kernel.ID
	if id, err := kernel.NewID(c.config.StoreID); err == nil {
		defaultStore = id
	}

	return httpapi.NewServer(httpapi.Handlers{
		GetRequests:           c.CreateGetRequestsQueryHandler(),
		GetRequest:            c.CreateGetRequestQueryHandler(),
		GetPendingHandoffs:    c.CreateGetPendingHandoffsQueryHandler(),
		RefreshRequests:       c.CreateRefreshRequestsCommandHandler(),
		CreateRequest:         c.CreateCreateRequestCommandHandler(),
		EditRequest:           c.CreateRequestCommandHandler(),
		SendInvoiceEmail:      c.CreateSendInvoiceEmailCommandHandler(),
		OpenLockerUnit:        c.CreateOpenLockerUnitCommandHandler(),
		ConfirmLockerClosed:   c.CreateConfirmLockerClosedCommandHandler(),
		AddOrderImages:        c.CreateAddOrderImagesCommandHandler(),
		UpdateServiceProgress: c.CreateUpdateServiceProgressCommandHandler(),
		UpdateOrderServices:   c.CreateUpdateOrderServicesCommandHandler(),
		ConfirmRetrieval:      c.CreateConfirmRetrievalCommandHandler(),
		UndoOrder:             c.CreateUndoOrderCommandHandler(),
		GetStores:             c.CreateGetStoresQueryHandler(),
		GetStore:              c.CreateGetStoreQueryHandler(),
		AddStoreTransaction:   c.CreateAddStoreTransactionCommandHandler(),
		GetCustomers:          c.CreateGetCustomersQueryHandler(),
		CreateCustomer:        c.CreateCreateCustomerCommandHandler(),
	}, defaultStore)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRefreshRequestsCommandHandler(),
		c.CreateExpireHandoffsCommandHandler(),
		jobs.Schedules{
			RequestSync:   c.config.SyncSchedule,
			HandoffExpiry: c.config.HandoffExpirySchedule,
			HandoffTTL:    c.config.HandoffTTL,
		},
		c.logger,
	)
}

// CreateNotificationSubscriber returns nil when no broker is configured.
func (c *CompositionRoot) CreateNotificationSubscriber() (*amqp.Subscriber, error) {
	if c.config.RabbitMQURL == "" {
		return nil, nil
	}
	return amqp.NewSubscriber(c.config.RabbitMQURL, c.config.RabbitMQQueue, c.CreateRefreshRequestsCommandHandler(), c.logger)
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
