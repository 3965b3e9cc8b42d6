package commands

import (
	"context"

	"dashboard/internal/core/domain/model/catalog"
	"dashboard/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

// loadCatalog fetches services and products concurrently.
func loadCatalog(ctx context.Context, gateway ports.CatalogGateway) (catalog.Catalog, error) {
	var cat catalog.Catalog
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		services, err := gateway.DisplayServices(ctx)
		cat.Services = services
		return err
	})
	g.Go(func() error {
		products, err := gateway.DisplayProducts(ctx)
		cat.Products = products
		return err
	})
	if err := g.Wait(); err != nil {
		return catalog.Catalog{}, err
	}
	return cat, nil
}

func serviceInputs(selections []selection) []ports.ServiceInput {
	inputs := make([]ports.ServiceInput, 0, len(selections))
	for _, s := range selections {
		inputs = append(inputs, ports.ServiceInput{ID: s.ID, Price: s.Price})
	}
	return inputs
}

func productInputs(selections []selection) []ports.ProductInput {
	inputs := make([]ports.ProductInput, 0, len(selections))
	for _, s := range selections {
		inputs = append(inputs, ports.ProductInput{ID: s.ID, Quantity: s.Quantity, Price: s.Price})
	}
	return inputs
}
