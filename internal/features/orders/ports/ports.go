package ports

import (
	"context"

	"elite-store/internal/features/orders/domain"
)

// OrderRepository persists the most recent order of a session.
// This is a Secondary Port (Driven Port).
type OrderRepository interface {
	// Save overwrites the session's order record.
	Save(ctx context.Context, sessionID string, order *domain.Order) error
	// Load returns the session's order record, nil when none exists.
	// Malformed data is reported as *storage.ParseError.
	Load(ctx context.Context, sessionID string) (*domain.Order, error)
}

// EventPublisher announces confirmed orders to other systems.
type EventPublisher interface {
	PublishOrderConfirmed(ctx context.Context, sessionID string, order *domain.Order) error
	Close() error
}
