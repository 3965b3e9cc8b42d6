package http

import (
	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/core/application/usecases/queries"
	"dashboard/internal/core/domain/model/customer"
	"dashboard/internal/core/domain/model/locker"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/domain/model/store"
)

func toRequestSummaries(rows []queries.GetRequestsQueryResponse) []RequestSummary {
	response := make([]RequestSummary, len(rows))
	for i, row := range rows {
		orders := make([]OrderSummary, len(row.Orders))
		for j, o := range row.Orders {
			orders[j] = OrderSummary{
				Id:     o.ID.String(),
				Name:   o.Name,
				Type:   o.Type.String(),
				Status: o.Status.String(),
			}
		}
		response[i] = RequestSummary{
			Id:          row.ID.String(),
			Type:        row.Type.String(),
			Time:        row.Time,
			Orderer:     row.Orderer,
			Store:       row.Store,
			Price:       row.Price.Float64(),
			Paid:        row.Paid.Float64(),
			Outstanding: row.Outstanding.Float64(),
			Orders:      orders,
		}
	}
	return response
}

func toRequest(r queries.GetRequestQueryResponse) Request {
	products := make([]ProductLine, len(r.Products))
	for i, p := range r.Products {
		products[i] = ProductLine{
			Id:       p.ID().String(),
			Name:     p.Name(),
			Quantity: p.Quantity(),
			Price:    p.AssignedPrice().Float64(),
		}
	}

	payments := make([]Payment, len(r.Payments))
	for i, p := range r.Payments {
		payments[i] = Payment{
			Type:      p.Type().String(),
			Amount:    p.Amount().Float64(),
			Reference: p.Reference(),
		}
		if at := p.Time(); !at.IsZero() {
			payments[i].Time = &at
		}
	}

	orders := make([]Order, len(r.Orders))
	for i, o := range r.Orders {
		orders[i] = toOrder(o)
	}

	return Request{
		Id:     r.ID.String(),
		Type:   r.Type.String(),
		Time:   r.Time,
		Status: r.Status.String(),
		Orderer: Orderer{
			Id:           r.Orderer.ID.String(),
			DisplayName:  r.Orderer.DisplayName,
			MobileNumber: r.Orderer.MobileNumber,
			Email:        r.Orderer.Email,
			Address:      r.Orderer.Address,
		},
		Store:         Store{Id: r.Store.ID.String(), Name: r.Store.Name},
		Invoice:       r.InvoiceCode,
		InvoiceNumber: r.Invoice.Number,
		Products:      products,
		Payments:      payments,
		PickUpTime:    r.PickUpTime,
		Remark:        r.Remark,
		Price:         r.Price.Float64(),
		Paid:          r.Paid.Float64(),
		Outstanding:   r.Outstanding.Float64(),
		Editable:      r.Editable,
		Orders:        orders,
	}
}

func toOrder(o queries.OrderResponse) Order {
	services := make([]Service, len(o.Services))
	for i, s := range o.Services {
		services[i] = Service{
			Id:    s.ID().String(),
			Type:  s.Kind().String(),
			Name:  s.Name(),
			Price: s.AssignedPrice().Float64(),
			Done:  s.Done(),
		}
	}

	events := make([]Event, len(o.Events))
	for i, e := range o.Events {
		events[i] = Event{Kind: e.Kind.String(), Time: e.Time, Status: e.Status.String()}
	}

	response := Order{
		Id:              o.ID.String(),
		Name:            o.Name,
		Type:            o.Type.String(),
		Status:          o.Status.String(),
		Time:            o.Time,
		Price:           o.Price.Float64(),
		Services:        services,
		ImagesBefore:    toImages(o.ImagesBefore),
		ImagesAfter:     toImages(o.ImagesAfter),
		Events:          events,
		CanUndo:         o.CanUndo,
		CanEditServices: o.CanEditServices,
	}
	if o.HasNextAction {
		action := o.NextAction.String()
		response.NextAction = &action
	}
	return response
}

func toImages(images []order.Image) []Image {
	response := make([]Image, len(images))
	for i, img := range images {
		response[i] = Image{Id: img.ID, ContentType: img.ContentType, Url: img.URL}
	}
	return response
}

func toOpenedUnit(result commands.OpenLockerUnitResult) OpenedUnit {
	layout := result.Layout
	l := layout.Locker()
	units := l.Units()
	lockerUnits := make([]LockerUnit, len(units))
	for i, u := range units {
		lockerUnits[i] = toLockerUnit(u)
	}
	return OpenedUnit{
		HandoffId: result.HandoffID.Value(),
		Action:    result.Action.String(),
		Unit:      toLockerUnit(layout.Unit()),
		Locker: Locker{
			Id:      l.ID().String(),
			Name:    l.Name(),
			Rows:    l.Rows(),
			Columns: l.Columns(),
			Units:   lockerUnits,
		},
	}
}

func toLockerUnit(u locker.Unit) LockerUnit {
	return LockerUnit{
		Id:     u.ID().String(),
		Number: u.Number(),
		Row:    u.Cell().Row(),
		Column: u.Cell().Column(),
	}
}

func toHandoffs(rows []queries.GetPendingHandoffsQueryResponse) []Handoff {
	response := make([]Handoff, len(rows))
	for i, h := range rows {
		response[i] = Handoff{
			Id:         h.ID.Value(),
			Kind:       h.Kind.String(),
			RequestId:  h.RequestID.String(),
			OrderId:    h.OrderID.String(),
			UnitId:     h.UnitID.String(),
			UnitNumber: h.UnitNumber,
			LockerName: h.LockerName,
			OpenedAt:   h.OpenedAt,
		}
	}
	return response
}

func toBranch(s store.Store) Branch {
	return Branch{
		Id:                 s.ID.String(),
		Name:               s.Name,
		RegistrationNumber: s.RegistrationNumber,
		Address:            s.Address,
		MobileNumber:       s.MobileNumber,
		Email:              s.Email,
	}
}

func toBranches(stores []store.Store) []Branch {
	response := make([]Branch, len(stores))
	for i, s := range stores {
		response[i] = toBranch(s)
	}
	return response
}

func toStoreDetail(d queries.GetStoreQueryResponse) StoreDetail {
	entries := make([]StoreEntry, len(d.Entries))
	for i, e := range d.Entries {
		entries[i] = StoreEntry{
			Type:   e.Kind.String(),
			Detail: e.Detail,
			Time:   e.Time,
			Amount: e.Amount.Float64(),
		}
	}
	return StoreDetail{
		Store: toBranch(d.Store),
		Balances: Balances{
			Cash:           d.Balances.Cash.Float64(),
			Bank:           d.Balances.Bank.Float64(),
			PaymentGateway: d.Balances.PaymentGateway.Float64(),
			Total:          d.Total.Float64(),
		},
		Profit:  d.Profit.Float64(),
		Expense: d.Expense.Float64(),
		From:    d.From,
		To:      d.To,
		Entries: entries,
	}
}

func toCustomer(c customer.Customer) Customer {
	return Customer{
		Id:           c.ID.String(),
		DisplayName:  c.DisplayName,
		MobileNumber: c.MobileNumber,
		Email:        c.Email,
		Address:      c.Address,
		Employee:     c.Role.String(),
	}
}

func toCustomers(customers []customer.Customer) []Customer {
	response := make([]Customer, len(customers))
	for i, c := range customers {
		response[i] = toCustomer(c)
	}
	return response
}
