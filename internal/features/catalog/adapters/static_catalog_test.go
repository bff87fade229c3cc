package adapter

import (
	"context"
	"testing"

	"elite-store/internal/features/catalog/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDefaultCatalog verifies the bundled catalog loads and contains the flagship cleanser.
func TestNewDefaultCatalog(t *testing.T) {
	catalog, err := NewDefaultCatalog()
	require.NoError(t, err)

	products, err := catalog.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, products)

	p, err := catalog.Get(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Anua Heartleaf Pore Deep Cleansing Foam", p.Name)
	assert.Equal(t, "16.99", p.Price.StringFixed(2))
	require.NotNil(t, p.OriginalPrice)
	assert.Equal(t, "24.99", p.OriginalPrice.StringFixed(2))
	assert.Equal(t, 1847, p.Reviews)
	assert.Equal(t, "Cleansers", p.Category)
	assert.Len(t, p.Gallery, 2)
}

// TestStaticCatalog_GetMissing verifies that an unknown id yields nil without error.
func TestStaticCatalog_GetMissing(t *testing.T) {
	catalog, err := NewDefaultCatalog()
	require.NoError(t, err)

	p, err := catalog.Get(context.Background(), 999)
	assert.NoError(t, err)
	assert.Nil(t, p)
}

// TestStaticCatalog_ListIsCopy verifies that callers cannot mutate the catalog.
func TestStaticCatalog_ListIsCopy(t *testing.T) {
	catalog, err := NewDefaultCatalog()
	require.NoError(t, err)

	products, _ := catalog.List(context.Background())
	products[0].Name = "changed"

	again, _ := catalog.List(context.Background())
	assert.NotEqual(t, "changed", again[0].Name)
}

// TestNewStaticCatalog_Invalid verifies decoding and validation failures.
func TestNewStaticCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
		wantMsg string
	}{
		{name: "Malformed", data: `{"id":`, wantMsg: "failed to decode catalog"},
		{name: "BadPrice", data: `[{"id":1,"name":"Foam","price":0}]`, wantErr: domain.ErrInvalidPrice},
		{name: "NoName", data: `[{"id":1,"price":1}]`, wantErr: domain.ErrEmptyProductName},
		{name: "Duplicate", data: `[{"id":1,"name":"A","price":1},{"id":1,"name":"B","price":2}]`, wantMsg: "duplicate product id 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStaticCatalog([]byte(tt.data))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
