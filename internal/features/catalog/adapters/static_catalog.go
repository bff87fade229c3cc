package adapter

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"elite-store/internal/features/catalog/domain"
)

//go:embed products.json
var defaultProducts []byte

// StaticCatalog serves a fixed product list loaded once at startup.
type StaticCatalog struct {
	products []domain.Product
	byID     map[int]int
}

// NewDefaultCatalog loads the catalog bundled with the binary.
func NewDefaultCatalog() (*StaticCatalog, error) {
	return NewStaticCatalog(defaultProducts)
}

// NewStaticCatalog decodes a JSON product array and validates every entry.
// Duplicate ids are rejected.
func NewStaticCatalog(data []byte) (*StaticCatalog, error) {
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	byID := make(map[int]int, len(products))
	for i := range products {
		if err := products[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog entry %d: %w", i, err)
		}
		if _, dup := byID[products[i].ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", products[i].ID)
		}
		byID[products[i].ID] = i
	}

	return &StaticCatalog{products: products, byID: byID}, nil
}

// List returns a copy of the catalog in file order.
func (c *StaticCatalog) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

// Get returns the product with the given id, or nil when absent.
func (c *StaticCatalog) Get(ctx context.Context, id int) (*domain.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, nil
	}
	p := c.products[i]
	return &p, nil
}
