package request

import (
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
)

// Summary is the simplified request shown in lists. Price and paid are the
// totals reported by the remote.
type Summary struct {
	ID      kernel.ID
	Type    order.Type
	Time    time.Time
	Orderer Orderer
	Store   Store
	Price   kernel.Money
	Paid    kernel.Money
	Orders  []OrderSummary
}

type OrderSummary struct {
	ID     kernel.ID
	Type   order.Type
	Status order.Status
	Name   string
}

// Summarize projects a detailed request onto its list form.
func Summarize(r *Request) Summary {
	orders := make([]OrderSummary, 0, len(r.orders))
	for _, o := range r.orders {
		orders = append(orders, OrderSummary{ID: o.ID(), Type: o.Type(), Status: o.Status(), Name: o.Name()})
	}
	return Summary{
		ID:      r.id,
		Type:    r.kind,
		Time:    r.time,
		Orderer: r.orderer,
		Store:   r.store,
		Price:   r.Price(),
		Paid:    r.Paid(),
		Orders:  orders,
	}
}

// Outstanding is what is left to pay, never below zero.
func (s Summary) Outstanding() kernel.Money {
	return s.Price.Sub(s.Paid)
}
