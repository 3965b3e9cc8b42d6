package store

import (
	"errors"
	"fmt"
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/errs"
)

// Kind of a recorded transaction.
type Kind int

const (
	UnknownKind Kind = iota
	Inflow
	Outflow
	Transfer
)

var kindNames = map[Kind]string{
	Inflow:   "inflow",
	Outflow:  "outflow",
	Transfer: "transfer",
}

func ParseKind(s string) (Kind, error) {
	for kind, name := range kindNames {
		if name == s {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("please choose a valid transaction type", fmt.Errorf("%q is not a transaction type", s))
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Target is a single account of a single store.
type Target struct {
	StoreID kernel.ID
	Balance Balance
}

func (t Target) validate() error {
	if err := t.StoreID.Validate(); err != nil {
		return err
	}
	return t.Balance.Validate()
}

func (t Target) IsEqual(other Target) bool {
	return t.StoreID.IsEqual(other.StoreID) && t.Balance == other.Balance
}

var ErrSameAccount = errors.New("source and destination must differ")

// Transaction is a validated cash-flow entry ready to be recorded. From is
// set for outflows and transfers, To for inflows and transfers.
type Transaction struct {
	kind   Kind
	from   *Target
	to     *Target
	amount kernel.Money
	remark string
	at     *time.Time
}

// NewInflow records money entering to. A nil at lets the remote stamp it.
func NewInflow(to Target, amount kernel.Money, remark string, at *time.Time) (Transaction, error) {
	return newTransaction(Inflow, nil, &to, amount, remark, at)
}

// NewOutflow records money leaving from.
func NewOutflow(from Target, amount kernel.Money, remark string, at *time.Time) (Transaction, error) {
	return newTransaction(Outflow, &from, nil, amount, remark, at)
}

// NewTransfer moves money between two accounts, possibly of different stores.
func NewTransfer(from, to Target, amount kernel.Money, remark string, at *time.Time) (Transaction, error) {
	return newTransaction(Transfer, &from, &to, amount, remark, at)
}

func newTransaction(kind Kind, from, to *Target, amount kernel.Money, remark string, at *time.Time) (Transaction, error) {
	if from != nil {
		if err := from.validate(); err != nil {
			return Transaction{}, errs.NewValueIsInvalidErrorWithCause("please choose a valid source", err)
		}
	}
	if to != nil {
		if err := to.validate(); err != nil {
			return Transaction{}, errs.NewValueIsInvalidErrorWithCause("please set a valid destination", err)
		}
	}
	if from != nil && to != nil && from.IsEqual(*to) {
		return Transaction{}, errs.NewValueIsInvalidErrorWithCause("please set a valid destination", ErrSameAccount)
	}
	if amount.IsZero() {
		return Transaction{}, errs.NewValueIsInvalidError("please set a valid amount")
	}
	return Transaction{kind: kind, from: from, to: to, amount: amount, remark: remark, at: at}, nil
}

func (t Transaction) Kind() Kind {
	return t.kind
}

// From is the debited account, absent for inflows.
func (t Transaction) From() (Target, bool) {
	if t.from == nil {
		return Target{}, false
	}
	return *t.from, true
}

// To is the credited account, absent for outflows.
func (t Transaction) To() (Target, bool) {
	if t.to == nil {
		return Target{}, false
	}
	return *t.to, true
}

func (t Transaction) Amount() kernel.Money {
	return t.amount
}

func (t Transaction) Remark() string {
	return t.remark
}

// Time is the backdated time of the entry, if any.
func (t Transaction) Time() (time.Time, bool) {
	if t.at == nil {
		return time.Time{}, false
	}
	return *t.at, true
}
