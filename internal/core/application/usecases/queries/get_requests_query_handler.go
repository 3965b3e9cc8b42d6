package queries

import (
	"context"
	"encoding/json"
	"fmt"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetRequestsQueryHandler reads the request list straight from the
// request_summaries table.
type GetRequestsQueryHandler struct {
	db *gorm.DB
}

func NewGetRequestsQueryHandler(db *gorm.DB) GetRequestsQueryHandler {
	return GetRequestsQueryHandler{db: db}
}

// orderSummaryRow mirrors the jsonb entries of request_summaries.orders.
type orderSummaryRow struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Status string `json:"status"`
	Name   string `json:"name"`
}

func (h GetRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetRequestsQuery,
) ([]GetRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requests := make([]GetRequestsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			type,
			"time",
			orderer_display_name,
			store_name,
			price,
			paid,
			orders
		FROM request_summaries
		ORDER BY "time" DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetRequestsQueryResponse
		var id, kind string
		var price, paid decimal.Decimal
		var ordersJSON []byte

		err = rows.Scan(
			&id,
			&kind,
			&resp.Time,
			&resp.Orderer,
			&resp.Store,
			&price,
			&paid,
			&ordersJSON,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.NewID(id); err != nil {
			return nil, err
		}
		if resp.Type, err = order.ParseType(kind); err != nil {
			return nil, err
		}
		if resp.Price, err = kernel.NewMoney(price); err != nil {
			return nil, err
		}
		if resp.Paid, err = kernel.NewMoney(paid); err != nil {
			return nil, err
		}
		resp.Outstanding = resp.Price.Sub(resp.Paid)

		if resp.Orders, err = orderSummaries(ordersJSON); err != nil {
			return nil, fmt.Errorf("request %s: %w", id, err)
		}
		requests = append(requests, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

func orderSummaries(raw []byte) ([]OrderSummaryResponse, error) {
	var rows []orderSummaryRow
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &rows); err != nil {
			return nil, err
		}
	}

	orders := make([]OrderSummaryResponse, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.NewID(row.ID)
		if err != nil {
			return nil, err
		}
		kind, err := order.ParseType(row.Type)
		if err != nil {
			return nil, err
		}
		status, err := order.ParseStatus(row.Status)
		if err != nil {
			return nil, err
		}
		orders = append(orders, OrderSummaryResponse{ID: id, Name: row.Name, Type: kind, Status: status})
	}
	return orders, nil
}
