package service

import (
	"context"
	"errors"
	"fmt"

	"elite-store/internal/features/catalog/domain"
	"elite-store/internal/features/catalog/ports"
)

// ErrProductNotFound is returned when no product has the requested id.
var ErrProductNotFound = errors.New("product not found")

// CatalogService exposes the product catalog to the storefront.
type CatalogService struct {
	catalog ports.ProductCatalog
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(catalog ports.ProductCatalog) *CatalogService {
	return &CatalogService{
		catalog: catalog,
	}
}

// ListProducts returns every product in catalog order.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct returns a single product by id.
func (s *CatalogService) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	product, err := s.catalog.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get product %d: %w", id, err)
	}

	if product == nil {
		return nil, fmt.Errorf("%w: %d", ErrProductNotFound, id)
	}

	return product, nil
}
