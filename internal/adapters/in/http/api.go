package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers of openapi.yaml.
type ServerInterface interface {
	// (GET /api/v1/customers)
	GetCustomers(ctx echo.Context, params GetCustomersParams) error
	// (POST /api/v1/customers)
	CreateCustomer(ctx echo.Context) error
	// (GET /api/v1/handoffs)
	GetPendingHandoffs(ctx echo.Context) error
	// (POST /api/v1/locker-units/{lockerUnitId}/closed)
	ConfirmLockerClosed(ctx echo.Context, lockerUnitId string) error
	// (POST /api/v1/orders/{orderId}/images/{stage})
	AddOrderImages(ctx echo.Context, orderId string, stage ImageStage) error
	// (POST /api/v1/orders/{orderId}/locker-unit)
	OpenLockerUnit(ctx echo.Context, orderId string) error
	// (POST /api/v1/orders/{orderId}/retrieval)
	ConfirmRetrieval(ctx echo.Context, orderId string) error
	// (PUT /api/v1/orders/{orderId}/services)
	UpdateOrderServices(ctx echo.Context, orderId string) error
	// (POST /api/v1/orders/{orderId}/services/done)
	UpdateServiceProgress(ctx echo.Context, orderId string) error
	// (POST /api/v1/orders/{orderId}/undo)
	UndoOrder(ctx echo.Context, orderId string) error
	// (GET /api/v1/requests)
	GetRequests(ctx echo.Context, params GetRequestsParams) error
	// (POST /api/v1/requests)
	CreateRequest(ctx echo.Context) error
	// (GET /api/v1/requests/{requestId})
	GetRequest(ctx echo.Context, requestId string, params GetRequestParams) error
	// (POST /api/v1/requests/{requestId}/cancel)
	CancelRequest(ctx echo.Context, requestId string) error
	// (POST /api/v1/requests/{requestId}/invoice-email)
	SendInvoiceEmail(ctx echo.Context, requestId string) error
	// (POST /api/v1/requests/{requestId}/payments)
	AddPayment(ctx echo.Context, requestId string) error
	// (POST /api/v1/requests/{requestId}/pick-up-time)
	UpdatePickUpTime(ctx echo.Context, requestId string) error
	// (POST /api/v1/requests/{requestId}/products)
	UpdateProducts(ctx echo.Context, requestId string) error
	// (POST /api/v1/requests/{requestId}/refresh)
	RefreshRequest(ctx echo.Context, requestId string) error
	// (POST /api/v1/requests/{requestId}/remark)
	UpdateRemark(ctx echo.Context, requestId string) error
	// (GET /api/v1/stores)
	GetStores(ctx echo.Context) error
	// (GET /api/v1/stores/{storeId})
	GetStore(ctx echo.Context, storeId string, params GetStoreParams) error
	// (POST /api/v1/stores/{storeId}/transactions)
	AddStoreTransaction(ctx echo.Context, storeId string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetCustomers(ctx echo.Context) error {
	var params GetCustomersParams
	err := runtime.BindQueryParameter("form", true, false, "search", ctx.QueryParams(), &params.Search)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter search: %s", err))
	}
	return w.Handler.GetCustomers(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateCustomer(ctx echo.Context) error {
	return w.Handler.CreateCustomer(ctx)
}

func (w *ServerInterfaceWrapper) GetPendingHandoffs(ctx echo.Context) error {
	return w.Handler.GetPendingHandoffs(ctx)
}

func (w *ServerInterfaceWrapper) ConfirmLockerClosed(ctx echo.Context) error {
	lockerUnitId, err := pathParameter(ctx, "lockerUnitId")
	if err != nil {
		return err
	}
	return w.Handler.ConfirmLockerClosed(ctx, lockerUnitId)
}

func (w *ServerInterfaceWrapper) AddOrderImages(ctx echo.Context) error {
	orderId, err := pathParameter(ctx, "orderId")
	if err != nil {
		return err
	}

	var stage ImageStage
	err = runtime.BindStyledParameterWithOptions("simple", "stage", ctx.Param("stage"), &stage,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter stage: %s", err))
	}
	return w.Handler.AddOrderImages(ctx, orderId, stage)
}

func (w *ServerInterfaceWrapper) OpenLockerUnit(ctx echo.Context) error {
	orderId, err := pathParameter(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.OpenLockerUnit(ctx, orderId)
}

func (w *ServerInterfaceWrapper) ConfirmRetrieval(ctx echo.Context) error {
	orderId, err := pathParameter(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ConfirmRetrieval(ctx, orderId)
}

func (w *ServerInterfaceWrapper) UpdateOrderServices(ctx echo.Context) error {
	orderId, err := pathParameter(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderServices(ctx, orderId)
}

func (w *ServerInterfaceWrapper) UpdateServiceProgress(ctx echo.Context) error {
	orderId, err := pathParameter(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateServiceProgress(ctx, orderId)
}

func (w *ServerInterfaceWrapper) UndoOrder(ctx echo.Context) error {
	orderId, err := pathParameter(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.UndoOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) GetRequests(ctx echo.Context) error {
	var params GetRequestsParams
	err := runtime.BindQueryParameter("form", true, false, "cached", ctx.QueryParams(), &params.Cached)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter cached: %s", err))
	}
	return w.Handler.GetRequests(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateRequest(ctx echo.Context) error {
	return w.Handler.CreateRequest(ctx)
}

func (w *ServerInterfaceWrapper) GetRequest(ctx echo.Context) error {
	requestId, err := pathParameter(ctx, "requestId")
	if err != nil {
		return err
	}

	var params GetRequestParams
	err = runtime.BindQueryParameter("form", true, false, "cached", ctx.QueryParams(), &params.Cached)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter cached: %s", err))
	}
	return w.Handler.GetRequest(ctx, requestId, params)
}

func (w *ServerInterfaceWrapper) CancelRequest(ctx echo.Context) error {
	requestId, err := pathParameter(ctx, "requestId")
	if err != nil {
		return err
	}
	return w.Handler.CancelRequest(ctx, requestId)
}

func (w *ServerInterfaceWrapper) SendInvoiceEmail(ctx echo.Context) error {
	requestId, err := pathParameter(ctx, "requestId")
	if err != nil {
		return err
	}
	return w.Handler.SendInvoiceEmail(ctx, requestId)
}

func (w *ServerInterfaceWrapper) AddPayment(ctx echo.Context) error {
	requestId, err := pathParameter(ctx, "requestId")
	if err != nil {
		return err
	}
	return w.Handler.AddPayment(ctx, requestId)
}

func (w *ServerInterfaceWrapper) UpdatePickUpTime(ctx echo.Context) error {
	requestId, err := pathParameter(ctx, "requestId")
	if err != nil {
		return err
	}
	return w.Handler.UpdatePickUpTime(ctx, requestId)
}

func (w *ServerInterfaceWrapper) UpdateProducts(ctx echo.Context) error {
	requestId, err := pathParameter(ctx, "requestId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateProducts(ctx, requestId)
}

func (w *ServerInterfaceWrapper) RefreshRequest(ctx echo.Context) error {
	requestId, err := pathParameter(ctx, "requestId")
	if err != nil {
		return err
	}
	return w.Handler.RefreshRequest(ctx, requestId)
}

func (w *ServerInterfaceWrapper) UpdateRemark(ctx echo.Context) error {
	requestId, err := pathParameter(ctx, "requestId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateRemark(ctx, requestId)
}

func (w *ServerInterfaceWrapper) GetStores(ctx echo.Context) error {
	return w.Handler.GetStores(ctx)
}

func (w *ServerInterfaceWrapper) GetStore(ctx echo.Context) error {
	storeId, err := pathParameter(ctx, "storeId")
	if err != nil {
		return err
	}
	var params GetStoreParams
	err = runtime.BindQueryParameter("form", true, false, "from", ctx.QueryParams(), &params.From)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter from: %s", err))
	}
	err = runtime.BindQueryParameter("form", true, false, "to", ctx.QueryParams(), &params.To)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter to: %s", err))
	}
	return w.Handler.GetStore(ctx, storeId, params)
}

func (w *ServerInterfaceWrapper) AddStoreTransaction(ctx echo.Context) error {
	storeId, err := pathParameter(ctx, "storeId")
	if err != nil {
		return err
	}
	return w.Handler.AddStoreTransaction(ctx, storeId)
}

func pathParameter(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return value, nil
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/api/v1/customers", w.GetCustomers)
	router.POST(baseURL+"/api/v1/customers", w.CreateCustomer)
	router.GET(baseURL+"/api/v1/handoffs", w.GetPendingHandoffs)
	router.POST(baseURL+"/api/v1/locker-units/:lockerUnitId/closed", w.ConfirmLockerClosed)
	router.POST(baseURL+"/api/v1/orders/:orderId/images/:stage", w.AddOrderImages)
	router.POST(baseURL+"/api/v1/orders/:orderId/locker-unit", w.OpenLockerUnit)
	router.POST(baseURL+"/api/v1/orders/:orderId/retrieval", w.ConfirmRetrieval)
	router.PUT(baseURL+"/api/v1/orders/:orderId/services", w.UpdateOrderServices)
	router.POST(baseURL+"/api/v1/orders/:orderId/services/done", w.UpdateServiceProgress)
	router.POST(baseURL+"/api/v1/orders/:orderId/undo", w.UndoOrder)
	router.GET(baseURL+"/api/v1/requests", w.GetRequests)
	router.POST(baseURL+"/api/v1/requests", w.CreateRequest)
	router.GET(baseURL+"/api/v1/requests/:requestId", w.GetRequest)
	router.POST(baseURL+"/api/v1/requests/:requestId/cancel", w.CancelRequest)
	router.POST(baseURL+"/api/v1/requests/:requestId/invoice-email", w.SendInvoiceEmail)
	router.POST(baseURL+"/api/v1/requests/:requestId/payments", w.AddPayment)
	router.POST(baseURL+"/api/v1/requests/:requestId/pick-up-time", w.UpdatePickUpTime)
	router.POST(baseURL+"/api/v1/requests/:requestId/products", w.UpdateProducts)
	router.POST(baseURL+"/api/v1/requests/:requestId/refresh", w.RefreshRequest)
	router.POST(baseURL+"/api/v1/requests/:requestId/remark", w.UpdateRemark)
	router.GET(baseURL+"/api/v1/stores", w.GetStores)
	router.GET(baseURL+"/api/v1/stores/:storeId", w.GetStore)
	router.POST(baseURL+"/api/v1/stores/:storeId/transactions", w.AddStoreTransaction)
}
