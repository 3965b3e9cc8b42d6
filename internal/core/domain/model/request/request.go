package request

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/pkg/errs"
)

var (
	ErrRequestIsNotConstructed = errors.New("Request must be created via RestoreRequest")

	// ErrRequestIsCancelled is returned for any change to a cancelled request.
	ErrRequestIsCancelled = errs.NewValueIsInvalidErrorWithCause(
		"request is invalid", errors.New("the request is cancelled"))

	ErrInvoiceNumberMismatch = errs.NewValueIsInvalidError("please enter the invoice number to continue")
	ErrSamePickUpDate        = errs.NewValueIsInvalidError("please choose a different pick up date")
)

// Request is an orders request: one customer visit with its orders, retail
// products and payments. It is restored from the remote on every fetch.
type Request struct {
	id         kernel.ID
	kind       order.Type
	time       time.Time
	orderer    Orderer
	store      Store
	status     Status
	orders     []*order.Order
	products   []ProductLine
	invoice    Invoice
	payments   []Payment
	pickUpTime *time.Time
	remark     string

	isConstructed bool
}

// RestoreParams carries a detailed request as reported by the remote API.
type RestoreParams struct {
	ID         kernel.ID
	Type       order.Type
	Time       time.Time
	Orderer    Orderer
	Store      Store
	Status     Status
	Orders     []*order.Order
	Products   []ProductLine
	Invoice    Invoice
	Payments   []Payment
	PickUpTime *time.Time
	Remark     string
}

func RestoreRequest(p RestoreParams) (*Request, error) {
	if err := errors.Join(p.ID.Validate(), p.Type.Validate(), p.Status.Validate()); err != nil {
		return nil, err
	}
	for _, o := range p.Orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if o.Type() != p.Type {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"orders are invalid", fmt.Errorf("%s order %s in a %s request", o.Type(), o.ID(), p.Type))
		}
	}

	return &Request{
		id:            p.ID,
		kind:          p.Type,
		time:          p.Time,
		orderer:       p.Orderer,
		store:         p.Store,
		status:        p.Status,
		orders:        slices.Clone(p.Orders),
		products:      slices.Clone(p.Products),
		invoice:       p.Invoice,
		payments:      slices.Clone(p.Payments),
		pickUpTime:    p.PickUpTime,
		remark:        p.Remark,
		isConstructed: true,
	}, nil
}

func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

func (r *Request) ID() kernel.ID              { return r.id }
func (r *Request) Type() order.Type           { return r.kind }
func (r *Request) Time() time.Time            { return r.time }
func (r *Request) Orderer() Orderer           { return r.orderer }
func (r *Request) Store() Store               { return r.store }
func (r *Request) Status() Status             { return r.status }
func (r *Request) Orders() []*order.Order     { return slices.Clone(r.orders) }
func (r *Request) Products() []ProductLine    { return slices.Clone(r.products) }
func (r *Request) Invoice() Invoice           { return r.invoice }
func (r *Request) Payments() []Payment        { return slices.Clone(r.payments) }
func (r *Request) PickUpTime() *time.Time     { return r.pickUpTime }
func (r *Request) Remark() string             { return r.remark }
func (r *Request) IsCancelled() bool          { return r.status == Cancelled }

// Order finds an order of this request by id.
func (r *Request) Order(id kernel.ID) (*order.Order, bool) {
	i := slices.IndexFunc(r.orders, func(o *order.Order) bool { return o.ID().IsEqual(id) })
	if i < 0 {
		return nil, false
	}
	return r.orders[i], true
}

// Price is the sum of every ordered service and every product line.
func (r *Request) Price() kernel.Money {
	total := kernel.Zero()
	for _, o := range r.orders {
		total = total.Add(o.Price())
	}
	for _, p := range r.products {
		total = total.Add(p.Total())
	}
	return total
}

func (r *Request) Paid() kernel.Money {
	total := kernel.Zero()
	for _, p := range r.payments {
		total = total.Add(p.Amount())
	}
	return total
}

// Outstanding is what is left to pay, never below zero.
func (r *Request) Outstanding() kernel.Money {
	return r.Price().Sub(r.Paid())
}

// ValidateMutable returns ErrRequestIsCancelled once the request is cancelled.
func (r *Request) ValidateMutable() error {
	if r.IsCancelled() {
		return ErrRequestIsCancelled
	}
	return nil
}

// ValidatePayment rejects payments on a cancelled request and payments larger
// than the outstanding balance.
func (r *Request) ValidatePayment(p Payment) error {
	if err := r.ValidateMutable(); err != nil {
		return err
	}
	if outstanding := r.Outstanding(); p.Amount().GreaterThan(outstanding) {
		return errs.NewValueIsOutOfRangeError("payment amount", p.Amount().String(), "0.01", outstanding.String())
	}
	return nil
}

// ValidateCancel checks the operator typed the invoice number and the request
// is still in progress.
func (r *Request) ValidateCancel(typedInvoiceNumber string) error {
	if err := r.ValidateMutable(); err != nil {
		return err
	}
	if !r.invoice.Matches(typedInvoiceNumber) {
		return ErrInvoiceNumberMismatch
	}
	return nil
}

// ValidatePickUpTime rejects a pick up time on the same date as the current one.
func (r *Request) ValidatePickUpTime(at time.Time) error {
	if err := r.ValidateMutable(); err != nil {
		return err
	}
	if r.pickUpTime != nil && sameDate(*r.pickUpTime, at) {
		return ErrSamePickUpDate
	}
	return nil
}

func (r *Request) AddPayment(p Payment) error {
	if err := r.ValidatePayment(p); err != nil {
		return err
	}
	r.payments = append(r.payments, p)
	return nil
}

func (r *Request) Cancel() error {
	status, err := r.status.Cancel()
	if err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *Request) UpdateProducts(products []ProductLine) error {
	if err := r.ValidateMutable(); err != nil {
		return err
	}
	r.products = slices.Clone(products)
	return nil
}

func (r *Request) UpdatePickUpTime(at time.Time) error {
	if err := r.ValidatePickUpTime(at); err != nil {
		return err
	}
	r.pickUpTime = &at
	return nil
}

func (r *Request) UpdateRemark(remark string) error {
	if err := r.ValidateMutable(); err != nil {
		return err
	}
	r.remark = remark
	return nil
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
