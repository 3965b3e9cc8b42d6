package services

import (
	"fmt"

	"dashboard/internal/core/domain/model/catalog"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/domain/model/request"
	"dashboard/internal/pkg/errs"
)

var (
	ErrNoServiceChosen   = order.ErrNoServiceChosen
	ErrIncompletePricing = errs.NewValueIsRequiredError("please fill in all the pricing")
	ErrNoOrderName       = errs.NewValueIsRequiredError("please fill in a name first")
	ErrIncompleteProduct = request.ErrIncompleteProduct
)

// Choice is what the operator picked: a catalog item and, for variable
// priced items, the price they typed. Quantity is only used for products.
type Choice struct {
	ID       kernel.ID
	Price    *kernel.Money
	Quantity int
}

// Selection is a validated choice with its resolved price.
type Selection struct {
	ID       kernel.ID
	Name     string
	Price    kernel.Money
	Variable bool
	Quantity int
}

// ServiceSelector checks service and product choices against the catalog
// before they are submitted to the remote.
//
// Rules:
//   - at least one service is chosen
//   - every chosen id exists in the catalog
//   - no chosen main service excludes another chosen service
//   - variable priced items carry a price, fixed priced items take the catalog price
//
// Example:
//
//	selector := services.NewServiceSelector()
//	lines, err := selector.SelectServices(cat, []services.Choice{{ID: deepClean}})
//	if err != nil {
//	    // show err to the operator
//	}
type ServiceSelector struct{}

func NewServiceSelector() ServiceSelector {
	return ServiceSelector{}
}

// SelectServices validates the services of one order.
func (ServiceSelector) SelectServices(cat catalog.Catalog, choices []Choice) ([]Selection, error) {
	if len(choices) == 0 {
		return nil, ErrNoServiceChosen
	}

	chosen := make([]catalog.Service, 0, len(choices))
	for _, c := range choices {
		s, ok := cat.Service(c.ID)
		if !ok {
			return nil, errs.NewObjectNotFoundError("serviceId", c.ID.String())
		}
		chosen = append(chosen, s)
	}

	for _, main := range chosen {
		if main.Kind() != order.MainService {
			continue
		}
		for _, other := range chosen {
			if main.Excludes(other.ID()) {
				return nil, errs.NewValueIsInvalidErrorWithCause(
					"services are invalid", fmt.Errorf("%s cannot be ordered together with %s", main.Name(), other.Name()))
			}
		}
	}

	selections := make([]Selection, 0, len(choices))
	for i, c := range choices {
		price, err := resolvePrice(chosen[i].Price(), c.Price, ErrIncompletePricing)
		if err != nil {
			return nil, err
		}
		selections = append(selections, Selection{
			ID:       chosen[i].ID(),
			Name:     chosen[i].Name(),
			Price:    price,
			Variable: chosen[i].Price().IsVariable(),
		})
	}
	return selections, nil
}

// SelectOrder validates a new order: a name and its services.
func (s ServiceSelector) SelectOrder(cat catalog.Catalog, name string, choices []Choice) ([]Selection, error) {
	if name == "" {
		return nil, ErrNoOrderName
	}
	return s.SelectServices(cat, choices)
}

// SelectProducts validates the retail products of a request. An empty list
// clears the products.
func (ServiceSelector) SelectProducts(cat catalog.Catalog, choices []Choice) ([]Selection, error) {
	selections := make([]Selection, 0, len(choices))
	for _, c := range choices {
		p, ok := cat.Product(c.ID)
		if !ok {
			return nil, errs.NewObjectNotFoundError("productId", c.ID.String())
		}
		if c.Quantity <= 0 {
			return nil, ErrIncompleteProduct
		}
		price, err := resolvePrice(p.Price(), c.Price, ErrIncompleteProduct)
		if err != nil {
			return nil, err
		}
		selections = append(selections, Selection{
			ID:       p.ID(),
			Name:     p.Name(),
			Price:    price,
			Variable: p.Price().IsVariable(),
			Quantity: c.Quantity,
		})
	}
	return selections, nil
}

func resolvePrice(rule catalog.PriceRule, typed *kernel.Money, missing error) (kernel.Money, error) {
	if !rule.IsVariable() {
		return rule.Amount(), nil
	}
	if typed == nil {
		return kernel.Money{}, missing
	}
	return *typed, nil
}
