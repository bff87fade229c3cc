package adapter

import (
	"context"
	"time"

	"elite-store/internal/features/tracking/domain"

	"github.com/shopspring/decimal"
)

const dhlTrackingURL = "https://www.dhl.de/de/privatkunden/pakete-empfangen/verfolgen.html?lang=de&idc="

// DemoProvider serves the fixed demonstration shipments shown on the tracking page.
type DemoProvider struct {
	records map[string]domain.TrackingRecord
}

// NewDemoProvider creates the provider with its three sample shipments.
func NewDemoProvider() *DemoProvider {
	total := decimal.RequireFromString("35.99")

	records := []domain.TrackingRecord{
		{
			OrderNumber:       "ES-2025-001234",
			OrderDate:         day(2025, time.September, 10),
			Total:             total,
			Status:            domain.TrackingStatusShipped,
			TrackingNumber:    "DHL1234567890",
			Carrier:           "DHL",
			CarrierURL:        dhlTrackingURL,
			EstimatedDelivery: day(2025, time.September, 13),
			CurrentStep:       3,
		},
		{
			OrderNumber:       "ES-2025-001235",
			OrderDate:         day(2025, time.September, 11),
			Total:             total,
			Status:            domain.TrackingStatusProcessing,
			EstimatedDelivery: day(2025, time.September, 14),
			CurrentStep:       2,
		},
		{
			OrderNumber:       "ES-2025-001236",
			OrderDate:         day(2025, time.September, 9),
			Total:             total,
			Status:            domain.TrackingStatusDelivered,
			TrackingNumber:    "DHL0987654321",
			Carrier:           "DHL",
			CarrierURL:        dhlTrackingURL,
			EstimatedDelivery: day(2025, time.September, 12),
			CurrentStep:       4,
		},
	}

	p := &DemoProvider{records: make(map[string]domain.TrackingRecord, len(records))}
	for _, r := range records {
		p.records[r.OrderNumber] = r
	}
	return p
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// Name implements ports.TrackingProvider.
func (p *DemoProvider) Name() string {
	return "demo"
}

// Lookup implements ports.TrackingProvider.
func (p *DemoProvider) Lookup(ctx context.Context, orderNumber string) (*domain.TrackingRecord, error) {
	r, ok := p.records[orderNumber]
	if !ok {
		return nil, nil
	}
	return &r, nil
}
