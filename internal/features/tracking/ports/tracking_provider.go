package ports

import (
	"context"

	"elite-store/internal/features/tracking/domain"
)

// TrackingProvider resolves order numbers to shipment state.
type TrackingProvider interface {
	// Lookup returns the record for an upper-cased order number, or nil when unknown.
	Lookup(ctx context.Context, orderNumber string) (*domain.TrackingRecord, error)
	// Name identifies the provider in logs.
	Name() string
}
