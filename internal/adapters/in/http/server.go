package http

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/core/application/usecases/queries"
	"dashboard/internal/core/domain/model/customer"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/domain/model/request"
	"dashboard/internal/core/domain/model/store"
	"dashboard/internal/core/domain/services"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

var _ ServerInterface = (*Server)(nil)

// QueryHandler is satisfied by the query handlers of the queries package.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// CommandHandler is satisfied by the command handlers that return the
// request they changed.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, command C) (*request.Request, error)
}

type RequestEditor interface {
	Cancel(ctx context.Context, command commands.CancelRequestCommand) (*request.Request, error)
	AddPayment(ctx context.Context, command commands.AddPaymentCommand) (*request.Request, error)
	UpdateProducts(ctx context.Context, command commands.UpdateProductsCommand) (*request.Request, error)
	UpdatePickUpTime(ctx context.Context, command commands.UpdatePickUpTimeCommand) (*request.Request, error)
	UpdateRemark(ctx context.Context, command commands.UpdateRemarkCommand) (*request.Request, error)
}

type InvoiceSender interface {
	Handle(ctx context.Context, command commands.SendInvoiceEmailCommand) error
}

type TransactionRecorder interface {
	Handle(ctx context.Context, command commands.AddStoreTransactionCommand) error
}

type Refresher interface {
	Handle(ctx context.Context, command commands.RefreshRequestsCommand) (int, error)
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	GetRequests        QueryHandler[queries.GetRequestsQuery, []queries.GetRequestsQueryResponse]
	GetRequest         QueryHandler[queries.GetRequestQuery, queries.GetRequestQueryResponse]
	GetPendingHandoffs QueryHandler[queries.GetPendingHandoffsQuery, []queries.GetPendingHandoffsQueryResponse]

	RefreshRequests       Refresher
	CreateRequest         CommandHandler[commands.CreateRequestCommand]
	EditRequest           RequestEditor
	SendInvoiceEmail      InvoiceSender
	OpenLockerUnit        QueryHandler[commands.OpenLockerUnitCommand, commands.OpenLockerUnitResult]
	ConfirmLockerClosed   CommandHandler[commands.ConfirmLockerClosedCommand]
	AddOrderImages        CommandHandler[commands.AddOrderImagesCommand]
	UpdateServiceProgress CommandHandler[commands.UpdateServiceProgressCommand]
	UpdateOrderServices   CommandHandler[commands.UpdateOrderServicesCommand]
	ConfirmRetrieval      CommandHandler[commands.ConfirmRetrievalCommand]
	UndoOrder             CommandHandler[commands.UndoOrderCommand]

	GetStores           QueryHandler[queries.GetStoresQuery, []store.Store]
	GetStore            QueryHandler[queries.GetStoreQuery, queries.GetStoreQueryResponse]
	AddStoreTransaction TransactionRecorder
	GetCustomers        QueryHandler[queries.GetCustomersQuery, []customer.Customer]
	CreateCustomer      QueryHandler[commands.CreateCustomerCommand, customer.Customer]
}

// Server implements ServerInterface. Every mutation answers with the
// changed request as GetRequest would return it.
type Server struct {
	handlers       Handlers
	defaultStoreID kernel.ID
}

// NewServer creates a server. defaultStoreID is used for new requests that
// do not name a store.
func NewServer(handlers Handlers, defaultStoreID kernel.ID) *Server {
	return &Server{handlers: handlers, defaultStoreID: defaultStoreID}
}

// GetRequests handles GET /api/v1/requests.
func (s *Server) GetRequests(ctx echo.Context, params GetRequestsParams) error {
	c := ctx.Request().Context()
	if params.Cached == nil || !*params.Cached {
		if _, err := s.handlers.RefreshRequests.Handle(c, commands.NewRefreshAllRequestsCommand()); err != nil {
			return writeError(ctx, err)
		}
	}

	rows, err := s.handlers.GetRequests.Handle(c, queries.NewGetRequestsQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toRequestSummaries(rows))
}

// GetRequest handles GET /api/v1/requests/{requestId}.
func (s *Server) GetRequest(ctx echo.Context, requestId string, params GetRequestParams) error {
	id, err := kernel.NewID(requestId)
	if err != nil {
		return writeError(ctx, err)
	}

	if params.Cached == nil || !*params.Cached {
		cmd, err := commands.NewRefreshRequestCommand(id)
		if err != nil {
			return writeError(ctx, err)
		}
		if _, err := s.handlers.RefreshRequests.Handle(ctx.Request().Context(), cmd); err != nil {
			return writeError(ctx, err)
		}
	}
	return s.respondRequest(ctx, http.StatusOK, id)
}

// CreateRequest handles POST /api/v1/requests.
func (s *Server) CreateRequest(ctx echo.Context) error {
	var body NewRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	storeID := s.defaultStoreID
	if body.StoreId != nil {
		storeID = lenientID(*body.StoreId)
	}

	orders := make([]commands.OrderChoice, len(body.Orders))
	for i, o := range body.Orders {
		choices, err := serviceChoices(o.Services)
		if err != nil {
			return writeError(ctx, err)
		}
		orders[i] = commands.OrderChoice{Name: o.Name, Services: choices}
	}
	products, err := productChoices(body.Products)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateRequestCommand(storeID, lenientID(body.OrdererId), orders, products)
	if err != nil {
		return writeError(ctx, err)
	}
	req, err := s.handlers.CreateRequest.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return s.respondRequest(ctx, http.StatusCreated, req.ID())
}

// CancelRequest handles POST /api/v1/requests/{requestId}/cancel.
func (s *Server) CancelRequest(ctx echo.Context, requestId string) error {
	var body CancelRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	id, err := kernel.NewID(requestId)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelRequestCommand(id, body.InvoiceNumber)
	if err != nil {
		return writeError(ctx, err)
	}
	return s.afterMutation(ctx)(s.handlers.EditRequest.Cancel(ctx.Request().Context(), cmd))
}

// AddPayment handles POST /api/v1/requests/{requestId}/payments.
func (s *Server) AddPayment(ctx echo.Context, requestId string) error {
	var body NewPayment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	id, err := kernel.NewID(requestId)
	if err != nil {
		return writeError(ctx, err)
	}

	kind, err := request.ParsePaymentType(body.Type)
	if err != nil {
		return writeError(ctx, err)
	}
	amount, err := kernel.NewMoney(decimal.NewFromFloat(body.Amount))
	if err != nil {
		return writeError(ctx, err)
	}
	var reference string
	if body.Reference != nil {
		reference = *body.Reference
	}
	var at time.Time
	if body.Time != nil {
		at = *body.Time
	}
	payment, err := request.NewPayment(kind, amount, reference, at)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAddPaymentCommand(id, payment)
	if err != nil {
		return writeError(ctx, err)
	}
	return s.afterMutation(ctx)(s.handlers.EditRequest.AddPayment(ctx.Request().Context(), cmd))
}

// UpdateProducts handles POST /api/v1/requests/{requestId}/products.
func (s *Server) UpdateProducts(ctx echo.Context, requestId string) error {
	var body UpdateProductsBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	id, err := kernel.NewID(requestId)
	if err != nil {
		return writeError(ctx, err)
	}

	products, err := productChoices(body.Products)
	if err != nil {
		return writeError(ctx, err)
	}
	cmd, err := commands.NewUpdateProductsCommand(id, products)
	if err != nil {
		return writeError(ctx, err)
	}
	return s.afterMutation(ctx)(s.handlers.EditRequest.UpdateProducts(ctx.Request().Context(), cmd))
}

// UpdatePickUpTime handles POST /api/v1/requests/{requestId}/pick-up-time.
func (s *Server) UpdatePickUpTime(ctx echo.Context, requestId string) error {
	var body UpdatePickUpTimeBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	id, err := kernel.NewID(requestId)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdatePickUpTimeCommand(id, body.Time)
	if err != nil {
		return writeError(ctx, err)
	}
	return s.afterMutation(ctx)(s.handlers.EditRequest.UpdatePickUpTime(ctx.Request().Context(), cmd))
}

// UpdateRemark handles POST /api/v1/requests/{requestId}/remark.
func (s *Server) UpdateRemark(ctx echo.Context, requestId string) error {
	var body UpdateRemarkBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	id, err := kernel.NewID(requestId)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateRemarkCommand(id, body.Remark)
	if err != nil {
		return writeError(ctx, err)
	}
	return s.afterMutation(ctx)(s.handlers.EditRequest.UpdateRemark(ctx.Request().Context(), cmd))
}

// SendInvoiceEmail handles POST /api/v1/requests/{requestId}/invoice-email.
func (s *Server) SendInvoiceEmail(ctx echo.Context, requestId string) error {
	id, err := kernel.NewID(requestId)
	if err != nil {
		return writeError(ctx, err)
	}

	header, err := ctx.FormFile("invoice")
	if err != nil {
		return badRequest(ctx, "Invoice file is missing")
	}
	invoice, err := readFile(header)
	if err != nil {
		return badRequest(ctx, "Invoice file is unreadable")
	}

	cmd, err := commands.NewSendInvoiceEmailCommand(id, invoice.Data)
	if err != nil {
		return writeError(ctx, err)
	}
	if err := s.handlers.SendInvoiceEmail.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RefreshRequest handles POST /api/v1/requests/{requestId}/refresh.
func (s *Server) RefreshRequest(ctx echo.Context, requestId string) error {
	return s.GetRequest(ctx, requestId, GetRequestParams{})
}

// OpenLockerUnit handles POST /api/v1/orders/{orderId}/locker-unit.
func (s *Server) OpenLockerUnit(ctx echo.Context, orderId string) error {
	id, err := kernel.NewID(orderId)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewOpenLockerUnitCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}
	result, err := s.handlers.OpenLockerUnit.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOpenedUnit(result))
}

// ConfirmLockerClosed handles POST /api/v1/locker-units/{lockerUnitId}/closed.
func (s *Server) ConfirmLockerClosed(ctx echo.Context, lockerUnitId string) error {
	id, err := kernel.NewID(lockerUnitId)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewConfirmLockerClosedCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}
	return s.afterMutation(ctx)(s.handlers.ConfirmLockerClosed.Handle(ctx.Request().Context(), cmd))
}

// AddOrderImages handles POST /api/v1/orders/{orderId}/images/{stage}.
func (s *Server) AddOrderImages(ctx echo.Context, orderId string, stage ImageStage) error {
	id, err := kernel.NewID(orderId)
	if err != nil {
		return writeError(ctx, err)
	}

	var action order.Action
	switch stage {
	case Before:
		action = order.AddBeforeImages
	case After:
		action = order.AddAfterImages
	default:
		return badRequest(ctx, "Image stage must be before or after")
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return badRequest(ctx, "Images are missing")
	}
	images := make([]ports.File, 0, len(form.File["images"]))
	for _, header := range form.File["images"] {
		image, err := readFile(header)
		if err != nil {
			return badRequest(ctx, "Image "+header.Filename+" is unreadable")
		}
		images = append(images, image)
	}

	cmd, err := commands.NewAddOrderImagesCommand(id, action, images)
	if err != nil {
		return writeError(ctx, err)
	}
	return s.afterMutation(ctx)(s.handlers.AddOrderImages.Handle(ctx.Request().Context(), cmd))
}

// UpdateServiceProgress handles POST /api/v1/orders/{orderId}/services/done.
func (s *Server) UpdateServiceProgress(ctx echo.Context, orderId string) error {
	var body UpdateServiceProgressBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	id, err := kernel.NewID(orderId)
	if err != nil {
		return writeError(ctx, err)
	}
	done, err := kernel.NewIDs(body.ServicesDone)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateServiceProgressCommand(id, done)
	if err != nil {
		return writeError(ctx, err)
	}
	return s.afterMutation(ctx)(s.handlers.UpdateServiceProgress.Handle(ctx.Request().Context(), cmd))
}

// UpdateOrderServices handles PUT /api/v1/orders/{orderId}/services.
func (s *Server) UpdateOrderServices(ctx echo.Context, orderId string) error {
	var body UpdateOrderServicesBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	id, err := kernel.NewID(orderId)
	if err != nil {
		return writeError(ctx, err)
	}
	choices, err := serviceChoices(body.Services)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderServicesCommand(id, choices)
	if err != nil {
		return writeError(ctx, err)
	}
	return s.afterMutation(ctx)(s.handlers.UpdateOrderServices.Handle(ctx.Request().Context(), cmd))
}

// ConfirmRetrieval handles POST /api/v1/orders/{orderId}/retrieval.
func (s *Server) ConfirmRetrieval(ctx echo.Context, orderId string) error {
	id, err := kernel.NewID(orderId)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewConfirmRetrievalCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}
	return s.afterMutation(ctx)(s.handlers.ConfirmRetrieval.Handle(ctx.Request().Context(), cmd))
}

// UndoOrder handles POST /api/v1/orders/{orderId}/undo.
func (s *Server) UndoOrder(ctx echo.Context, orderId string) error {
	id, err := kernel.NewID(orderId)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUndoOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}
	return s.afterMutation(ctx)(s.handlers.UndoOrder.Handle(ctx.Request().Context(), cmd))
}

// GetPendingHandoffs handles GET /api/v1/handoffs.
func (s *Server) GetPendingHandoffs(ctx echo.Context) error {
	rows, err := s.handlers.GetPendingHandoffs.Handle(ctx.Request().Context(), queries.NewGetPendingHandoffsQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toHandoffs(rows))
}

// GetStores handles GET /api/v1/stores.
func (s *Server) GetStores(ctx echo.Context) error {
	stores, err := s.handlers.GetStores.Handle(ctx.Request().Context(), queries.NewGetStoresQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toBranches(stores))
}

// GetStore handles GET /api/v1/stores/{storeId}.
func (s *Server) GetStore(ctx echo.Context, storeId string, params GetStoreParams) error {
	id, err := kernel.NewID(storeId)
	if err != nil {
		return writeError(ctx, err)
	}
	return s.respondStore(ctx, http.StatusOK, id, params.From, params.To)
}

// AddStoreTransaction handles POST /api/v1/stores/{storeId}/transactions.
// A side without its own store id belongs to the store of the path.
func (s *Server) AddStoreTransaction(ctx echo.Context, storeId string) error {
	id, err := kernel.NewID(storeId)
	if err != nil {
		return writeError(ctx, err)
	}

	kind, err := store.ParseKind(ctx.FormValue("type"))
	if err != nil {
		return writeError(ctx, err)
	}
	amount, err := formMoney(ctx.FormValue("amount"))
	if err != nil {
		return writeError(ctx, err)
	}
	var at *time.Time
	if value := ctx.FormValue("time"); value != "" {
		parsed, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return badRequest(ctx, "Time must be an RFC 3339 timestamp")
		}
		at = &parsed
	}

	var attachments []ports.File
	if form, err := ctx.MultipartForm(); err == nil {
		for _, header := range form.File["attachments"] {
			file, err := readFile(header)
			if err != nil {
				return badRequest(ctx, "Attachment "+header.Filename+" is unreadable")
			}
			attachments = append(attachments, file)
		}
	}

	cmd, err := commands.NewAddStoreTransactionCommand(
		kind,
		formTarget(ctx, "from", id),
		formTarget(ctx, "to", id),
		amount,
		ctx.FormValue("remark"),
		at,
		attachments,
	)
	if err != nil {
		return writeError(ctx, err)
	}
	if err := s.handlers.AddStoreTransaction.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return s.respondStore(ctx, http.StatusCreated, id, nil, nil)
}

// GetCustomers handles GET /api/v1/customers.
func (s *Server) GetCustomers(ctx echo.Context, params GetCustomersParams) error {
	var search string
	if params.Search != nil {
		search = *params.Search
	}
	found, err := s.handlers.GetCustomers.Handle(ctx.Request().Context(), queries.NewGetCustomersQuery(search))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCustomers(found))
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	var address string
	if body.Address != nil {
		address = *body.Address
	}

	cmd, err := commands.NewCreateCustomerCommand(body.DisplayName, body.MobileNumber, body.Email, address)
	if err != nil {
		return writeError(ctx, err)
	}
	created, err := s.handlers.CreateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toCustomer(created))
}

func (s *Server) respondStore(ctx echo.Context, status int, id kernel.ID, from, to *time.Time) error {
	query, err := queries.NewGetStoreQuery(id, from, to)
	if err != nil {
		return writeError(ctx, err)
	}
	view, err := s.handlers.GetStore.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(status, toStoreDetail(view))
}

func (s *Server) afterMutation(ctx echo.Context) func(*request.Request, error) error {
	return func(req *request.Request, err error) error {
		if err != nil {
			return writeError(ctx, err)
		}
		return s.respondRequest(ctx, http.StatusOK, req.ID())
	}
}

func (s *Server) respondRequest(ctx echo.Context, status int, id kernel.ID) error {
	query, err := queries.NewGetRequestQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}
	view, err := s.handlers.GetRequest.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(status, toRequest(view))
}

// lenientID leaves invalid ids zero so the command reports them with its
// own wording.
func lenientID(value string) kernel.ID {
	id, err := kernel.NewID(value)
	if err != nil {
		return kernel.ID{}
	}
	return id
}

func serviceChoices(in []ServiceChoice) ([]services.Choice, error) {
	choices := make([]services.Choice, len(in))
	for i, c := range in {
		price, err := optionalMoney(c.Price)
		if err != nil {
			return nil, err
		}
		choices[i] = services.Choice{ID: lenientID(c.Id), Price: price, Quantity: 1}
	}
	return choices, nil
}

func productChoices(in []ProductChoice) ([]services.Choice, error) {
	choices := make([]services.Choice, len(in))
	for i, c := range in {
		price, err := optionalMoney(c.Price)
		if err != nil {
			return nil, err
		}
		choices[i] = services.Choice{ID: lenientID(c.Id), Price: price, Quantity: c.Quantity}
	}
	return choices, nil
}

func optionalMoney(value *float64) (*kernel.Money, error) {
	if value == nil {
		return nil, nil
	}
	m, err := kernel.NewMoney(decimal.NewFromFloat(*value))
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func readFile(header *multipart.FileHeader) (ports.File, error) {
	f, err := header.Open()
	if err != nil {
		return ports.File{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return ports.File{}, err
	}
	contentType := header.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return ports.File{Name: header.Filename, ContentType: contentType, Data: data}, nil
}

// formTarget reads the <side> balance and optional <side>StoreId fields.
// Unknown balances stay zero so the command reports the side by name.
func formTarget(ctx echo.Context, side string, storeID kernel.ID) store.Target {
	target := store.Target{StoreID: storeID}
	if value := ctx.FormValue(side + "StoreId"); value != "" {
		target.StoreID = lenientID(value)
	}
	target.Balance, _ = store.ParseBalance(ctx.FormValue(side))
	return target
}

func formMoney(value string) (kernel.Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("please set a valid amount", err)
	}
	m, err := kernel.NewMoney(d)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("please set a valid amount", err)
	}
	return m, nil
}
