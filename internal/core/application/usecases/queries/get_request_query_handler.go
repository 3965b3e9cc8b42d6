package queries

import (
	"context"

	"dashboard/internal/core/ports"
)

// GetRequestQueryHandler rebuilds the stored request so the order
// annotations come from the same rules the commands enforce.
type GetRequestQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetRequestQueryHandler(uowFactory ports.UnitOfWorkFactory) GetRequestQueryHandler {
	return GetRequestQueryHandler{uowFactory: uowFactory}
}

func (h GetRequestQueryHandler) Handle(ctx context.Context, query GetRequestQuery) (GetRequestQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRequestQueryResponse{}, err
	}

	r, err := h.uowFactory.Create().RequestRepository().Get(ctx, query.RequestID())
	if err != nil {
		return GetRequestQueryResponse{}, err
	}

	resp := GetRequestQueryResponse{
		ID:          r.ID(),
		Type:        r.Type(),
		Time:        r.Time(),
		Status:      r.Status(),
		Orderer:     r.Orderer(),
		Store:       r.Store(),
		Invoice:     r.Invoice(),
		InvoiceCode: r.Invoice().Code(),
		Products:    r.Products(),
		Payments:    r.Payments(),
		PickUpTime:  r.PickUpTime(),
		Remark:      r.Remark(),
		Price:       r.Price(),
		Paid:        r.Paid(),
		Outstanding: r.Outstanding(),
		Editable:    r.ValidateMutable() == nil,
		Orders:      make([]OrderResponse, 0, len(r.Orders())),
	}

	for _, o := range r.Orders() {
		next, ok := o.NextAction()
		resp.Orders = append(resp.Orders, OrderResponse{
			ID:              o.ID(),
			Name:            o.Name(),
			Type:            o.Type(),
			Status:          o.Status(),
			Time:            o.Time(),
			Price:           o.Price(),
			Services:        o.Services(),
			ImagesBefore:    o.ImagesBefore(),
			ImagesAfter:     o.ImagesAfter(),
			Events:          o.Events(),
			NextAction:      next,
			HasNextAction:   ok && resp.Editable,
			CanUndo:         o.CanUndo() && resp.Editable,
			CanEditServices: o.CanEditServices() && resp.Editable,
		})
	}

	return resp, nil
}
