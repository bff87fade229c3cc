package ports

import (
	"context"

	cart "elite-store/internal/features/cart/domain"
	"elite-store/internal/features/checkout/domain"
	orders "elite-store/internal/features/orders/domain"
)

// CartSource is the session cart the checkout reads and empties.
type CartSource interface {
	Snapshot() ([]cart.Line, cart.Totals)
	Clear(ctx context.Context) error
}

// PaymentGateway tokenises cards and confirms payment intents.
type PaymentGateway interface {
	// CreatePaymentMethod returns the payment method id for the card.
	CreatePaymentMethod(ctx context.Context, card domain.CardInput, customer domain.CustomerInfo) (string, error)
	// ConfirmPayment confirms the intent identified by clientSecret with the payment method.
	ConfirmPayment(ctx context.Context, clientSecret, paymentMethodID string) (*domain.PaymentIntent, error)
}

// IntentCreator asks the payment backend for a new payment intent.
type IntentCreator interface {
	CreateIntent(ctx context.Context, lines []cart.Line, customer domain.CustomerInfo) (*domain.IntentResponse, error)
}

// OrderRecorder persists the confirmed order.
type OrderRecorder interface {
	Save(ctx context.Context, sessionID string, order *orders.Order) error
}
