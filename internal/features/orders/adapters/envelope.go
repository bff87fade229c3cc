package adapter

import (
	"time"

	"elite-store/internal/core/money"
	"elite-store/internal/features/orders/domain"

	"github.com/google/uuid"
)

const (
	orderConfirmedEventName    = "OrderConfirmed"
	orderConfirmedEventVersion = 1
	producerName               = "elite-store"
)

// EventEnvelope is the common wrapper for published events.
type EventEnvelope[T any] struct {
	EventName    string    `json:"eventName"`
	EventVersion int       `json:"eventVersion"`
	EventID      string    `json:"eventId"`
	Producer     string    `json:"producer"`
	PartitionKey string    `json:"partitionKey"`
	OccurredAt   time.Time `json:"occurredAt"`
	Payload      T         `json:"payload"`
}

// OrderConfirmedPayload is the v1 payload of an OrderConfirmed event.
type OrderConfirmedPayload struct {
	SessionID   string        `json:"sessionId"`
	OrderNumber string        `json:"orderNumber"`
	Email       string        `json:"email"`
	Items       []domain.Item `json:"items"`
	Total       string        `json:"total"`
	TotalMinor  int64         `json:"totalMinor"`
	Currency    string        `json:"currency"`
	OrderDate   time.Time     `json:"orderDate"`
}

// BuildOrderConfirmedEnvelope wraps an order in a versioned event keyed by order number.
func BuildOrderConfirmedEnvelope(sessionID string, currency money.Currency, order *domain.Order, now time.Time) EventEnvelope[OrderConfirmedPayload] {
	return EventEnvelope[OrderConfirmedPayload]{
		EventName:    orderConfirmedEventName,
		EventVersion: orderConfirmedEventVersion,
		EventID:      uuid.NewString(),
		Producer:     producerName,
		PartitionKey: order.OrderNumber,
		OccurredAt:   now.UTC(),
		Payload: OrderConfirmedPayload{
			SessionID:   sessionID,
			OrderNumber: order.OrderNumber,
			Email:       order.CustomerInfo.Email,
			Items:       order.Items,
			Total:       order.Totals.Total.StringFixed(2),
			TotalMinor:  currency.ToMinor(order.Totals.Total),
			Currency:    currency.Code(),
			OrderDate:   order.OrderDate,
		},
	}
}
