package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"elite-store/internal/core/httpclient"
	cart "elite-store/internal/features/cart/domain"
	"elite-store/internal/features/checkout/domain"
	orders "elite-store/internal/features/orders/domain"
)

const createIntentPath = "/create-payment-intent"

// IntentClient implements ports.IntentCreator against the payment backend.
type IntentClient struct {
	client  *http.Client
	baseURL string
}

// NewIntentClient creates a client for the backend rooted at baseURL.
func NewIntentClient(baseURL string, timeout time.Duration) *IntentClient {
	return &IntentClient{
		client:  httpclient.NewClient("payment-intent", timeout),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type intentLine struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
}

type intentCustomer struct {
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Address orders.Address `json:"address"`
}

type intentRequest struct {
	CartItems    []intentLine   `json:"cartItems"`
	CustomerInfo intentCustomer `json:"customerInfo"`
}

// CreateIntent posts the cart and customer and returns the intent's client secret.
// Non-2xx answers and transport failures are returned as *domain.PaymentIntentError.
func (c *IntentClient) CreateIntent(ctx context.Context, lines []cart.Line, customer domain.CustomerInfo) (*domain.IntentResponse, error) {
	payload := intentRequest{
		CartItems: make([]intentLine, 0, len(lines)),
		CustomerInfo: intentCustomer{
			Name:    customer.Name,
			Email:   customer.Email,
			Address: customer.Address,
		},
	}
	for _, l := range lines {
		payload.CartItems = append(payload.CartItems, intentLine{
			ID:       l.ID,
			Name:     l.Name,
			Price:    l.Price.InexactFloat64(),
			Quantity: l.Quantity,
			Image:    l.Image,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal intent request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+createIntentPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.PaymentIntentError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &domain.PaymentIntentError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	var out domain.IntentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &domain.PaymentIntentError{Status: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if out.ClientSecret == "" {
		return nil, &domain.PaymentIntentError{Status: resp.StatusCode, Body: "missing clientSecret"}
	}

	return &out, nil
}
