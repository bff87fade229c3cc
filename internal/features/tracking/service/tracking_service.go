package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"elite-store/internal/features/tracking/domain"
	"elite-store/internal/features/tracking/ports"
)

var (
	// ErrOrderNumberRequired is returned for a blank order number.
	ErrOrderNumberRequired = errors.New("order number is required")
	// ErrOrderNotFound is returned when no provider knows the order.
	ErrOrderNotFound = errors.New("order not found")
)

// TrackingService resolves order numbers across tracking providers.
type TrackingService struct {
	providers []ports.TrackingProvider
}

// NewTrackingService creates a new TrackingService with the given providers.
// Providers are consulted in order; the first match wins.
func NewTrackingService(providers []ports.TrackingProvider) *TrackingService {
	return &TrackingService{
		providers: providers,
	}
}

// Lookup finds the shipment for an order number. Matching trims surrounding
// whitespace and ignores case.
func (s *TrackingService) Lookup(ctx context.Context, orderNumber string) (*domain.TrackingRecord, error) {
	key := strings.ToUpper(strings.TrimSpace(orderNumber))
	if key == "" {
		return nil, ErrOrderNumberRequired
	}

	for _, provider := range s.providers {
		record, err := provider.Lookup(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to get tracking from provider %s: %w", provider.Name(), err)
		}
		if record != nil {
			return record, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, key)
}
