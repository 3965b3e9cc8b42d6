package queries

import (
	"context"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/locker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetPendingHandoffsQueryHandler struct {
	db *gorm.DB
}

func NewGetPendingHandoffsQueryHandler(db *gorm.DB) GetPendingHandoffsQueryHandler {
	return GetPendingHandoffsQueryHandler{db: db}
}

// Handle returns the opened handoffs, oldest first.
func (h GetPendingHandoffsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingHandoffsQuery,
) ([]GetPendingHandoffsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	handoffs := make([]GetPendingHandoffsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			h.id,
			h.kind,
			h.request_id,
			h.order_id,
			h.unit_id,
			COALESCE((u->>'number')::int, 0),
			COALESCE(h.layout->>'name', ''),
			h.opened_at
		FROM locker_handoffs h
		LEFT JOIN LATERAL jsonb_array_elements(h.layout->'units') u
			ON u->>'id' = h.unit_id
		WHERE h.state = ?
		ORDER BY h.opened_at
	`, locker.UnitOpened.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingHandoffsQueryResponse
		var id uuid.UUID
		var kind, requestID, orderID, unitID string

		err = rows.Scan(
			&id,
			&kind,
			&requestID,
			&orderID,
			&unitID,
			&resp.UnitNumber,
			&resp.LockerName,
			&resp.OpenedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFrom(id); err != nil {
			return nil, err
		}
		if resp.Kind, err = locker.ParseHandoffKind(kind); err != nil {
			return nil, err
		}
		if resp.RequestID, err = kernel.NewID(requestID); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.NewID(orderID); err != nil {
			return nil, err
		}
		if resp.UnitID, err = kernel.NewID(unitID); err != nil {
			return nil, err
		}
		handoffs = append(handoffs, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return handoffs, nil
}
