package catalog

import (
	"errors"
	"slices"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
)

// Service is a cleaning service offered by the stores. A main service can
// exclude other services from being ordered together with it.
type Service struct {
	id      kernel.ID
	kind    order.ServiceKind
	name    string
	price   PriceRule
	icon    string
	exclude []kernel.ID
}

func NewService(id kernel.ID, kind order.ServiceKind, name string, price PriceRule, icon string, exclude []kernel.ID) (Service, error) {
	if err := errors.Join(id.Validate(), price.Validate()); err != nil {
		return Service{}, err
	}
	if kind != order.MainService {
		exclude = nil
	}
	return Service{id: id, kind: kind, name: name, price: price, icon: icon, exclude: slices.Clone(exclude)}, nil
}

func (s Service) ID() kernel.ID           { return s.id }
func (s Service) Kind() order.ServiceKind { return s.kind }
func (s Service) Name() string            { return s.name }
func (s Service) Price() PriceRule        { return s.price }
func (s Service) Icon() string            { return s.icon }
func (s Service) Exclude() []kernel.ID    { return slices.Clone(s.exclude) }

// Excludes reports whether this service cannot be ordered together with other.
func (s Service) Excludes(other kernel.ID) bool {
	return slices.ContainsFunc(s.exclude, other.IsEqual)
}

// Product is a retail item sold alongside services.
type Product struct {
	id    kernel.ID
	name  string
	price PriceRule
}

func NewProduct(id kernel.ID, name string, price PriceRule) (Product, error) {
	if err := errors.Join(id.Validate(), price.Validate()); err != nil {
		return Product{}, err
	}
	return Product{id: id, name: name, price: price}, nil
}

func (p Product) ID() kernel.ID    { return p.id }
func (p Product) Name() string     { return p.name }
func (p Product) Price() PriceRule { return p.price }

// Catalog is the set of services and products the dashboard can order from.
type Catalog struct {
	Services []Service
	Products []Product
}

func (c Catalog) Service(id kernel.ID) (Service, bool) {
	i := slices.IndexFunc(c.Services, func(s Service) bool { return s.ID().IsEqual(id) })
	if i < 0 {
		return Service{}, false
	}
	return c.Services[i], true
}

func (c Catalog) Product(id kernel.ID) (Product, bool) {
	i := slices.IndexFunc(c.Products, func(p Product) bool { return p.ID().IsEqual(id) })
	if i < 0 {
		return Product{}, false
	}
	return c.Products[i], true
}
