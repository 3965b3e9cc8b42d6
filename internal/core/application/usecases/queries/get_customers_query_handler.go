package queries

import (
	"context"
	"slices"
	"strings"

	"dashboard/internal/core/domain/model/customer"
	"dashboard/internal/core/ports"
)

type GetCustomersQueryHandler struct {
	gateway ports.CustomerGateway
}

func NewGetCustomersQueryHandler(gateway ports.CustomerGateway) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{gateway: gateway}
}

// Handle returns the matches sorted by name.
func (h GetCustomersQueryHandler) Handle(ctx context.Context, query GetCustomersQuery) ([]customer.Customer, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.gateway.DisplayUsers(ctx)
	if err != nil {
		return nil, err
	}

	matched := customer.Filter(all, query.Search())
	slices.SortStableFunc(matched, func(a, b customer.Customer) int {
		return strings.Compare(strings.ToLower(a.DisplayName), strings.ToLower(b.DisplayName))
	})
	return matched, nil
}
