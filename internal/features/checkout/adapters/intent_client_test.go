package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	cart "elite-store/internal/features/cart/domain"
	catalog "elite-store/internal/features/catalog/domain"
	"elite-store/internal/features/checkout/domain"
	orders "elite-store/internal/features/orders/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testLines = []cart.Line{{
		Product:  catalog.Product{ID: 1, Name: "Anua Heartleaf Pore Deep Cleansing Foam", Price: decimal.RequireFromString("16.99")},
		Quantity: 2,
	}}
	testCustomer = domain.CustomerInfo{
		Name:  "Ana Silva",
		Email: "user@example.com",
		Address: orders.Address{
			Line1:      "Rua Augusta 10",
			City:       "Lisboa",
			PostalCode: "1100-053",
			Country:    "PT",
		},
	}
)

// TestIntentClient_CreateIntent_Success verifies the request body and decoded secret.
func TestIntentClient_CreateIntent_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/create-payment-intent", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		items := body["cartItems"].([]any)
		require.Len(t, items, 1)
		item := items[0].(map[string]any)
		assert.Equal(t, 16.99, item["price"])
		assert.Equal(t, float64(2), item["quantity"])

		info := body["customerInfo"].(map[string]any)
		assert.Equal(t, "Ana Silva", info["name"])
		address := info["address"].(map[string]any)
		assert.Equal(t, "1100-053", address["postal_code"])

		w.Write([]byte(`{"clientSecret":"pi_123_secret_abc"}`))
	}))
	defer server.Close()

	client := NewIntentClient(server.URL+"/api/", 0)
	resp, err := client.CreateIntent(context.Background(), testLines, testCustomer)

	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_abc", resp.ClientSecret)
}

// TestIntentClient_CreateIntent_ServerError verifies non-2xx answers become PaymentIntentError.
func TestIntentClient_CreateIntent_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("intent backend down\n"))
	}))
	defer server.Close()

	client := NewIntentClient(server.URL, 0)
	resp, err := client.CreateIntent(context.Background(), testLines, testCustomer)

	assert.Nil(t, resp)
	var intentErr *domain.PaymentIntentError
	require.True(t, errors.As(err, &intentErr))
	assert.Equal(t, http.StatusInternalServerError, intentErr.Status)
	assert.Equal(t, "Server error: 500 - intent backend down", intentErr.Error())
}

// TestIntentClient_CreateIntent_MissingSecret verifies an empty secret is rejected.
func TestIntentClient_CreateIntent_MissingSecret(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, err := NewIntentClient(server.URL, 0).CreateIntent(context.Background(), testLines, testCustomer)

	var intentErr *domain.PaymentIntentError
	require.True(t, errors.As(err, &intentErr))
	assert.Equal(t, "missing clientSecret", intentErr.Body)
}

// TestIntentClient_CreateIntent_Unreachable verifies transport failures carry no status.
func TestIntentClient_CreateIntent_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewIntentClient(url, 0).CreateIntent(context.Background(), testLines, testCustomer)

	var intentErr *domain.PaymentIntentError
	require.True(t, errors.As(err, &intentErr))
	assert.Zero(t, intentErr.Status)
	assert.Error(t, intentErr.Err)
}
