package commands

import (
	"context"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/domain/model/request"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"
)

// RequestRefresher fetches requests from the remote and replaces the read
// model copy. Nothing is written when the fetch fails.
type RequestRefresher struct {
	gateway    ports.RequestGateway
	uowFactory RequestUoWFactory
}

func NewRequestRefresher(gateway ports.RequestGateway, uowFactory RequestUoWFactory) RequestRefresher {
	return RequestRefresher{gateway: gateway, uowFactory: uowFactory}
}

// Refresh fetches one detailed request.
func (r RequestRefresher) Refresh(ctx context.Context, id kernel.ID) (*request.Request, error) {
	fetched, err := r.gateway.DisplayRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	uow := r.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RequestRepository().Save(ctx, fetched); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return fetched, nil
}

// RefreshAll fetches the simplified request list.
func (r RequestRefresher) RefreshAll(ctx context.Context) ([]request.Summary, error) {
	summaries, err := r.gateway.DisplayRequests(ctx)
	if err != nil {
		return nil, err
	}

	uow := r.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RequestRepository().ReplaceSummaries(ctx, summaries); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return summaries, nil
}

// loadOrder finds an order and its request in the read model.
func loadOrder(ctx context.Context, repo ports.RequestRepository, orderID kernel.ID) (*request.Request, *order.Order, error) {
	req, err := repo.GetByOrder(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	o, ok := req.Order(orderID)
	if !ok {
		return nil, nil, errs.NewObjectNotFoundError("orderId", orderID.String())
	}
	return req, o, nil
}

// Refresher replaces the read model copy of a request with the remote one.
type Refresher interface {
	Refresh(ctx context.Context, id kernel.ID) (*request.Request, error)
}
