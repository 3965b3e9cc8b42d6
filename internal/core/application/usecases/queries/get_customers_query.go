package queries

import (
	"errors"
	"strings"

	"dashboard/internal/pkg/guard"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery searches customers by name, mobile number or email.
type GetCustomersQuery struct {
	search string
	guard  guard.ConstructorGuard
}

func NewGetCustomersQuery(search string) GetCustomersQuery {
	return GetCustomersQuery{search: strings.TrimSpace(search), guard: guard.NewConstructorGuard()}
}

func (q GetCustomersQuery) Search() string { return q.search }

func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}
