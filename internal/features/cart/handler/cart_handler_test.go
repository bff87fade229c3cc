package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"elite-store/internal/core/money"
	"elite-store/internal/core/server"
	"elite-store/internal/core/storage"
	adapter "elite-store/internal/features/cart/adapters"
	"elite-store/internal/features/cart/service"
	catalogadapter "elite-store/internal/features/catalog/adapters"
	catalogservice "elite-store/internal/features/catalog/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	mr := miniredis.RunT(t)
	store, err := storage.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	catalog, err := catalogadapter.NewDefaultCatalog()
	require.NoError(t, err)

	h := NewCartHandler(
		service.NewRegistry(adapter.NewStorageRepository(store, 0), 0),
		catalogservice.NewCatalogService(catalog),
		money.MustParse("EUR"),
	)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	h.Register(app)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body, session string) (*http.Response, CartView) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(server.SessionHeader, session)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var view CartView
	if resp.StatusCode == fiber.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	}
	return resp, view
}

// TestCartHandler_Flow verifies add, set, change and remove through the HTTP surface.
func TestCartHandler_Flow(t *testing.T) {
	app := newTestApp(t)

	_, view := do(t, app, "GET", "/cart", "", "s1")
	assert.True(t, view.Empty)
	assert.Equal(t, "€0.00", view.Subtotal)

	_, view = do(t, app, "POST", "/cart/items", `{"productId":1}`, "s1")
	_, view = do(t, app, "POST", "/cart/items", `{"productId":1}`, "s1")
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.ItemCount)
	assert.Equal(t, "€33.98", view.Subtotal)
	assert.Equal(t, "€33.98", view.Lines[0].LineTotal)
	assert.Equal(t, "€16.99", view.Lines[0].UnitPrice)

	_, view = do(t, app, "PUT", "/cart/items/1", `{"quantity":3}`, "s1")
	assert.Equal(t, 3, view.ItemCount)
	assert.Equal(t, "€50.97", view.Total)

	_, view = do(t, app, "PATCH", "/cart/items/1", `{"delta":-1}`, "s1")
	assert.Equal(t, 2, view.ItemCount)

	_, view = do(t, app, "DELETE", "/cart/items/1", "", "s1")
	assert.True(t, view.Empty)
	assert.Equal(t, 0, view.ItemCount)
}

// TestCartHandler_SetQuantityZeroRemoves verifies that quantity 0 removes the line.
func TestCartHandler_SetQuantityZeroRemoves(t *testing.T) {
	app := newTestApp(t)

	resp, _ := do(t, app, "POST", "/cart/items", `{"productId":1}`, "")
	session := resp.Header.Get(server.SessionHeader)
	require.NotEmpty(t, session)

	_, view := do(t, app, "PUT", "/cart/items/1", `{"quantity":0}`, session)
	assert.True(t, view.Empty)
}

// TestCartHandler_AnonymousClientsAreIsolated verifies header-less clients never share a cart.
func TestCartHandler_AnonymousClientsAreIsolated(t *testing.T) {
	app := newTestApp(t)

	resp, view := do(t, app, "POST", "/cart/items", `{"productId":1}`, "")
	first := resp.Header.Get(server.SessionHeader)
	require.NotEmpty(t, first)
	assert.Equal(t, 1, view.ItemCount)

	resp, view = do(t, app, "GET", "/cart", "", "")
	second := resp.Header.Get(server.SessionHeader)
	assert.NotEqual(t, first, second)
	assert.True(t, view.Empty)

	_, view = do(t, app, "GET", "/cart", "", first)
	assert.Equal(t, 1, view.ItemCount)
}

// TestCartHandler_SessionsAreIsolated verifies the session header partitions carts.
func TestCartHandler_SessionsAreIsolated(t *testing.T) {
	app := newTestApp(t)

	do(t, app, "POST", "/cart/items", `{"productId":1}`, "tab-a")
	_, view := do(t, app, "GET", "/cart", "", "tab-b")
	assert.True(t, view.Empty)

	_, view = do(t, app, "GET", "/cart", "", "tab-a")
	assert.Equal(t, 1, view.ItemCount)
}

// TestCartHandler_Errors verifies request validation and unknown products.
func TestCartHandler_Errors(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{name: "UnknownProduct", method: "POST", path: "/cart/items", body: `{"productId":99}`, status: fiber.StatusNotFound},
		{name: "MissingProduct", method: "POST", path: "/cart/items", body: `{}`, status: fiber.StatusBadRequest},
		{name: "MalformedBody", method: "POST", path: "/cart/items", body: `{`, status: fiber.StatusBadRequest},
		{name: "BadID", method: "PUT", path: "/cart/items/abc", body: `{"quantity":1}`, status: fiber.StatusBadRequest},
		{name: "BadDeleteID", method: "DELETE", path: "/cart/items/0", status: fiber.StatusBadRequest},
		{name: "QuantityAboveLimit", method: "PUT", path: "/cart/items/1", body: `{"quantity":1000}`, status: fiber.StatusBadRequest},
		{name: "DeltaOverflow", method: "PATCH", path: "/cart/items/1", body: `{"delta":9223372036854775807}`, status: fiber.StatusBadRequest},
		{name: "NegativeDeltaOverflow", method: "PATCH", path: "/cart/items/1", body: `{"delta":-9223372036854775808}`, status: fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := do(t, app, tt.method, tt.path, tt.body, "s1")
			assert.Equal(t, tt.status, resp.StatusCode)

			var errResp ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
			assert.Equal(t, "test-ray-id", errResp.RayID)
		})
	}
}

// TestCartHandler_ChangeQuantitySaturates verifies an in-range delta stops at the per-line limit.
func TestCartHandler_ChangeQuantitySaturates(t *testing.T) {
	app := newTestApp(t)

	do(t, app, "POST", "/cart/items", `{"productId":1}`, "s1")
	resp, view := do(t, app, "PATCH", "/cart/items/1", `{"delta":999}`, "s1")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 999, view.Lines[0].Quantity)

	resp, _ = do(t, app, "PATCH", "/cart/items/1", `{"delta":9223372036854775807}`, "s1")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	_, view = do(t, app, "GET", "/cart", "", "s1")
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 999, view.Lines[0].Quantity)
}

// TestCartHandler_RemoveAbsent verifies that removing an absent product is a no-op.
func TestCartHandler_RemoveAbsent(t *testing.T) {
	app := newTestApp(t)

	resp, view := do(t, app, "DELETE", "/cart/items/7", "", "s1")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, view.Empty)
}
