package queries

import (
	"errors"
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/store"
	"dashboard/internal/pkg/errs"
	"dashboard/internal/pkg/guard"
)

var (
	ErrGetStoresQueryIsNotConstructed = errors.New(
		"GetStoresQuery must be created via NewGetStoresQuery constructor",
	)
	ErrGetStoreQueryIsNotConstructed = errors.New(
		"GetStoreQuery must be created via NewGetStoreQuery constructor",
	)
)

// GetStoresQuery lists the branches for the finance page picker.
type GetStoresQuery struct {
	guard guard.ConstructorGuard
}

func NewGetStoresQuery() GetStoresQuery {
	return GetStoresQuery{guard: guard.NewConstructorGuard()}
}

func (q GetStoresQuery) Validate() error {
	return q.guard.Validate(ErrGetStoresQueryIsNotConstructed)
}

// GetStoreQuery reads a store's balances and the entries recorded in
// [From, To). The window defaults to store.RecentSince until now.
type GetStoreQuery struct {
	storeID kernel.ID
	from    time.Time
	to      time.Time
	guard   guard.ConstructorGuard
}

func NewGetStoreQuery(storeID kernel.ID, from, to *time.Time) (GetStoreQuery, error) {
	if err := storeID.Validate(); err != nil {
		return GetStoreQuery{}, err
	}

	end := time.Now()
	if to != nil {
		end = *to
	}
	start := store.RecentSince(end)
	if from != nil {
		start = *from
	}
	if !start.Before(end) {
		return GetStoreQuery{}, errs.NewValueIsInvalidError("please choose a start date before the end date")
	}
	return GetStoreQuery{storeID: storeID, from: start, to: end, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStoreQuery) StoreID() kernel.ID { return q.storeID }

func (q GetStoreQuery) From() time.Time { return q.from }

func (q GetStoreQuery) To() time.Time { return q.to }

func (q GetStoreQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreQueryIsNotConstructed)
}

type GetStoreQueryResponse struct {
	Store    store.Store
	Balances store.Balances
	Total    kernel.Money
	Profit   kernel.Money
	Expense  kernel.Money
	From     time.Time
	To       time.Time
	// Entries are newest first.
	Entries []store.Entry
}
