package ports

import (
	"context"

	"elite-store/internal/features/catalog/domain"
)

// ProductCatalog is the source of sellable products.
// This is a Secondary Port (Driven Port).
type ProductCatalog interface {
	// List returns every product in catalog order.
	List(ctx context.Context) ([]domain.Product, error)
	// Get returns the product with the given id, or nil when it does not exist.
	Get(ctx context.Context, id int) (*domain.Product, error)
}
