package queries

import (
	"context"
	"slices"

	"dashboard/internal/core/domain/model/store"
	"dashboard/internal/core/ports"
)

type GetStoresQueryHandler struct {
	gateway ports.StoreGateway
}

func NewGetStoresQueryHandler(gateway ports.StoreGateway) GetStoresQueryHandler {
	return GetStoresQueryHandler{gateway: gateway}
}

func (h GetStoresQueryHandler) Handle(ctx context.Context, query GetStoresQuery) ([]store.Store, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.gateway.DisplayStores(ctx)
}

type GetStoreQueryHandler struct {
	gateway ports.StoreGateway
}

func NewGetStoreQueryHandler(gateway ports.StoreGateway) GetStoreQueryHandler {
	return GetStoreQueryHandler{gateway: gateway}
}

func (h GetStoreQueryHandler) Handle(ctx context.Context, query GetStoreQuery) (GetStoreQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStoreQueryResponse{}, err
	}

	d, err := h.gateway.DisplayStore(ctx, query.StoreID(), query.From(), query.To())
	if err != nil {
		return GetStoreQueryResponse{}, err
	}

	entries := slices.Clone(d.Entries)
	slices.SortStableFunc(entries, func(a, b store.Entry) int {
		return b.Time.Compare(a.Time)
	})
	profit, expense := d.Totals()

	return GetStoreQueryResponse{
		Store:    d.Store,
		Balances: d.Balances,
		Total:    d.Balances.Total(),
		Profit:   profit,
		Expense:  expense,
		From:     query.From(),
		To:       query.To(),
		Entries:  entries,
	}, nil
}
