package adapter

import (
	"context"
	"errors"
	"strings"
	"time"

	"elite-store/internal/core/httpclient"
	"elite-store/internal/core/logger"
	"elite-store/internal/features/checkout/domain"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"github.com/stripe/stripe-go/v81/paymentmethod"
	"go.uber.org/zap"
)

const clientSecretSeparator = "_secret_"

// StripeGateway implements ports.PaymentGateway with the Stripe API.
type StripeGateway struct {
	methods paymentmethod.Client
	intents paymentintent.Client
}

// NewStripeBackend returns an API backend that logs through the service logger.
// An empty apiURL keeps Stripe's default host.
func NewStripeBackend(apiURL string, timeout time.Duration) stripe.Backend {
	cfg := &stripe.BackendConfig{
		HTTPClient:        httpclient.NewClient("stripe", timeout),
		LeveledLogger:     logger.Get().Sugar(),
		MaxNetworkRetries: stripe.Int64(0),
	}
	if apiURL != "" {
		cfg.URL = stripe.String(apiURL)
	}
	return stripe.GetBackendWithConfig(stripe.APIBackend, cfg)
}

// NewStripeGateway creates a gateway authenticated with secretKey.
func NewStripeGateway(secretKey string, backend stripe.Backend) *StripeGateway {
	return &StripeGateway{
		methods: paymentmethod.Client{B: backend, Key: secretKey},
		intents: paymentintent.Client{B: backend, Key: secretKey},
	}
}

// CreatePaymentMethod tokenises the card with the customer's billing details.
// Failures are returned as *domain.PaymentMethodError carrying the processor's message.
func (g *StripeGateway) CreatePaymentMethod(ctx context.Context, card domain.CardInput, customer domain.CustomerInfo) (string, error) {
	if strings.TrimSpace(card.Token) == "" {
		return "", &domain.PaymentMethodError{Message: "Please enter your card details."}
	}

	billing := &stripe.PaymentMethodBillingDetailsParams{
		Name:  stripe.String(customer.Name),
		Email: stripe.String(customer.Email),
		Address: &stripe.AddressParams{
			Line1:      stripe.String(customer.Address.Line1),
			City:       stripe.String(customer.Address.City),
			PostalCode: stripe.String(customer.Address.PostalCode),
			Country:    stripe.String(customer.Address.Country),
		},
	}
	if customer.Phone != "" {
		billing.Phone = stripe.String(customer.Phone)
	}
	if customer.Address.Line2 != "" {
		billing.Address.Line2 = stripe.String(customer.Address.Line2)
	}
	if customer.Address.State != "" {
		billing.Address.State = stripe.String(customer.Address.State)
	}

	params := &stripe.PaymentMethodParams{
		Type:           stripe.String(string(stripe.PaymentMethodTypeCard)),
		Card:           &stripe.PaymentMethodCardParams{Token: stripe.String(card.Token)},
		BillingDetails: billing,
	}
	params.Context = ctx

	pm, err := g.methods.New(params)
	if err != nil {
		return "", &domain.PaymentMethodError{Message: stripeMessage(err), Err: err}
	}

	logger.Get().Debug("Payment method created", zap.String("payment_method_id", pm.ID))

	return pm.ID, nil
}

// ConfirmPayment confirms the intent behind clientSecret and reports its final status.
func (g *StripeGateway) ConfirmPayment(ctx context.Context, clientSecret, paymentMethodID string) (*domain.PaymentIntent, error) {
	id, ok := intentID(clientSecret)
	if !ok {
		return nil, &domain.PaymentConfirmationError{Message: "invalid client secret"}
	}

	params := &stripe.PaymentIntentConfirmParams{
		PaymentMethod: stripe.String(paymentMethodID),
	}
	params.AddExpand("payment_method")
	params.Context = ctx

	pi, err := g.intents.Confirm(id, params)
	if err != nil {
		return nil, &domain.PaymentConfirmationError{Message: stripeMessage(err), Err: err}
	}

	out := &domain.PaymentIntent{
		ID:     pi.ID,
		Amount: pi.Amount,
		Status: string(pi.Status),
	}
	if pi.PaymentMethod != nil && pi.PaymentMethod.Card != nil {
		out.CardLast4 = pi.PaymentMethod.Card.Last4
		out.CardBrand = string(pi.PaymentMethod.Card.Brand)
	}

	return out, nil
}

// intentID extracts "pi_..." from "pi_..._secret_...".
func intentID(clientSecret string) (string, bool) {
	id, _, found := strings.Cut(clientSecret, clientSecretSeparator)
	if !found || id == "" {
		return "", false
	}
	return id, true
}

func stripeMessage(err error) string {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return stripeErr.Msg
	}
	return err.Error()
}
