package commands

import (
	"context"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/domain/model/request"
)

// actionRunner carries the steps shared by every remote action: one action
// per order at a time, local validation against the read model, the remote
// call and a refetch of the owning request. A failed remote call leaves the
// read model untouched.
type actionRunner struct {
	uowFactory RequestUoWFactory
	refresher  Refresher
	guard      *ActionGuard
}

func (r actionRunner) runOnOrder(
	ctx context.Context,
	orderID kernel.ID,
	validate func(*request.Request, *order.Order) error,
	call func(context.Context) error,
) (*request.Request, error) {
	release, err := r.guard.Acquire(orderID.String())
	if err != nil {
		return nil, err
	}
	defer release()

	req, o, err := loadOrder(ctx, r.uowFactory.Create().RequestRepository(), orderID)
	if err != nil {
		return nil, err
	}
	if err = validate(req, o); err != nil {
		return nil, err
	}
	if err = call(ctx); err != nil {
		return nil, err
	}
	return r.refresher.Refresh(ctx, req.ID())
}

func (r actionRunner) runOnRequest(
	ctx context.Context,
	requestID kernel.ID,
	validate func(*request.Request) error,
	call func(context.Context) error,
) (*request.Request, error) {
	release, err := r.guard.Acquire("request:" + requestID.String())
	if err != nil {
		return nil, err
	}
	defer release()

	req, err := r.uowFactory.Create().RequestRepository().Get(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if err = validate(req); err != nil {
		return nil, err
	}
	if err = call(ctx); err != nil {
		return nil, err
	}
	return r.refresher.Refresh(ctx, requestID)
}
