package store

import (
	"errors"
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/errs"
)

// Store is a branch as listed by the remote.
type Store struct {
	ID                 kernel.ID
	Name               string
	RegistrationNumber string
	Address            string
	MobileNumber       string
	Email              string
}

// EntryKind tells whether an entry added to or took from the store.
type EntryKind int

const (
	UnknownEntry EntryKind = iota
	Profit
	Expense
)

var entryKindNames = map[EntryKind]string{
	Profit:  "profit",
	Expense: "expense",
}

func ParseEntryKind(s string) EntryKind {
	for kind, name := range entryKindNames {
		if name == s {
			return kind
		}
	}
	return UnknownEntry
}

func (k EntryKind) String() string {
	if name, ok := entryKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Entry is one line of the finance page.
type Entry struct {
	Kind   EntryKind
	Detail string
	Time   time.Time
	Amount kernel.Money
}

// Detail is a store with its balances and the entries of a time window.
type Detail struct {
	Store    Store
	Balances Balances
	Entries  []Entry
}

var ErrInsufficientBalance = errors.New("source balance is lower than the amount")

// CanFund checks that the source account of t holds at least its amount. The
// check only applies when t debits this store.
func (d Detail) CanFund(t Transaction) error {
	from, ok := t.From()
	if !ok || !from.StoreID.IsEqual(d.Store.ID) {
		return nil
	}
	if t.Amount().GreaterThan(d.Balances.Of(from.Balance)) {
		return errs.NewValueIsInvalidErrorWithCause("there's insufficient balance in the source to continue", ErrInsufficientBalance)
	}
	return nil
}

// Totals sums profits and expenses of the loaded entries.
func (d Detail) Totals() (profit, expense kernel.Money) {
	profit, expense = kernel.Zero(), kernel.Zero()
	for _, entry := range d.Entries {
		switch entry.Kind {
		case Profit:
			profit = profit.Add(entry.Amount)
		case Expense:
			expense = expense.Add(entry.Amount)
		}
	}
	return profit, expense
}

// RecentSince is the default start of the finance window: midnight on the
// first day of the month four months before now.
func RecentSince(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month()-4, 1, 0, 0, 0, 0, now.Location())
}
