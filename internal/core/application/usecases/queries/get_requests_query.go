// Package queries contains read operations for retrieving system state.
// Request queries read the local copy of the remote data kept in postgres;
// the store and customer queries go to the remote API directly.
package queries

import (
	"errors"
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/pkg/guard"
)

var (
	ErrGetRequestsQueryIsNotConstructed = errors.New(
		"GetRequestsQuery must be created via NewGetRequestsQuery constructor",
	)
)

// GetRequestsQuery lists the simplified requests, newest first.
//
// Example:
//
//	query := NewGetRequestsQuery()
//	handler := NewGetRequestsQueryHandler(db)
//
//	requests, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list requests: %w", err)
//	}
type GetRequestsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetRequestsQuery() GetRequestsQuery {
	return GetRequestsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetRequestsQueryIsNotConstructed)
}

// GetRequestsQueryResponse is one row of the request list.
type GetRequestsQueryResponse struct {
	ID          kernel.ID
	Type        order.Type
	Time        time.Time
	Orderer     string
	Store       string
	Price       kernel.Money
	Paid        kernel.Money
	Outstanding kernel.Money
	Orders      []OrderSummaryResponse
}

type OrderSummaryResponse struct {
	ID     kernel.ID
	Name   string
	Type   order.Type
	Status order.Status
}
