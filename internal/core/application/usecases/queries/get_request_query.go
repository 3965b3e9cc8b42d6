package queries

import (
	"errors"
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/domain/model/request"
	"dashboard/internal/pkg/guard"
)

var (
	ErrGetRequestQueryIsNotConstructed = errors.New(
		"GetRequestQuery must be created via NewGetRequestQuery constructor",
	)
)

// GetRequestQuery reads one detailed request with every order annotated
// with what the operator can do next.
type GetRequestQuery struct {
	requestID kernel.ID
	guard     guard.ConstructorGuard
}

func NewGetRequestQuery(requestID kernel.ID) (GetRequestQuery, error) {
	if err := requestID.Validate(); err != nil {
		return GetRequestQuery{}, err
	}
	return GetRequestQuery{requestID: requestID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRequestQuery) RequestID() kernel.ID { return q.requestID }

func (q GetRequestQuery) Validate() error {
	return q.guard.Validate(ErrGetRequestQueryIsNotConstructed)
}

type GetRequestQueryResponse struct {
	ID          kernel.ID
	Type        order.Type
	Time        time.Time
	Status      request.Status
	Orderer     request.Orderer
	Store       request.Store
	Invoice     request.Invoice
	InvoiceCode string
	Products    []request.ProductLine
	Payments    []request.Payment
	PickUpTime  *time.Time
	Remark      string
	Price       kernel.Money
	Paid        kernel.Money
	Outstanding kernel.Money
	// Editable is false once the request is cancelled.
	Editable bool
	Orders   []OrderResponse
}

// OrderResponse is an order together with the single action the dashboard
// offers for it. HasNextAction is false when the order is finished.
type OrderResponse struct {
	ID              kernel.ID
	Name            string
	Type            order.Type
	Status          order.Status
	Time            time.Time
	Price           kernel.Money
	Services        []order.ServiceOrdered
	ImagesBefore    []order.Image
	ImagesAfter     []order.Image
	Events          []order.Event
	NextAction      order.Action
	HasNextAction   bool
	CanUndo         bool
	CanEditServices bool
}
