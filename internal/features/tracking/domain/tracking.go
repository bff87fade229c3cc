package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrackingStatus represents the current global status of a shipment.
type TrackingStatus string

const (
	// TrackingStatusProcessing indicates the order is being prepared.
	TrackingStatusProcessing TrackingStatus = "processing"
	// TrackingStatusShipped indicates the shipment has been handed to the carrier.
	TrackingStatusShipped TrackingStatus = "shipped"
	// TrackingStatusDelivered indicates the shipment has been delivered.
	TrackingStatusDelivered TrackingStatus = "delivered"
)

// TrackingRecord is the shipment state of one order. TrackingNumber is empty
// until the carrier assigns one, CarrierURL is a prefix the tracking number is
// appended to, and CurrentStep indexes Stages from 1 to StageCount.
type TrackingRecord struct {
	OrderNumber       string          `json:"order_number"`
	OrderDate         time.Time       `json:"order_date"`
	Total             decimal.Decimal `json:"total"`
	Status            TrackingStatus  `json:"status"`
	TrackingNumber    string          `json:"tracking_number,omitempty"`
	Carrier           string          `json:"carrier,omitempty"`
	CarrierURL        string          `json:"carrier_url,omitempty"`
	EstimatedDelivery time.Time       `json:"estimated_delivery"`
	CurrentStep       int             `json:"current_step"`
}

// CarrierLink returns the carrier tracking page, or "" when the shipment cannot be tracked yet.
func (r *TrackingRecord) CarrierLink() string {
	if r.TrackingNumber == "" || r.CarrierURL == "" {
		return ""
	}
	return r.CarrierURL + r.TrackingNumber
}

// StageCount is the number of stages in the shipment pipeline.
const StageCount = 4

// Stages names the shipment pipeline in order.
var Stages = [StageCount]string{"Order Confirmed", "Processing", "Shipped", "Delivered"}

// StageState is how a stage renders in the progress indicator.
type StageState string

const (
	StageComplete   StageState = "complete"
	StageInProgress StageState = "in_progress"
	StagePending    StageState = "pending"
)

// Stage is one step of the progress indicator.
type Stage struct {
	Number int        `json:"number"`
	Label  string     `json:"label"`
	State  StageState `json:"state"`
}

// Progress maps the current step onto the pipeline: stages up to and including
// current are complete, the next one is in progress unless it is the final stage,
// and the rest are pending.
func Progress(current int) []Stage {
	stages := make([]Stage, StageCount)
	for i, label := range Stages {
		n := i + 1
		state := StagePending
		switch {
		case n <= current:
			state = StageComplete
		case n == current+1 && n < StageCount:
			state = StageInProgress
		}
		stages[i] = Stage{Number: n, Label: label, State: state}
	}
	return stages
}

// ProgressPercent is the filled share of the progress line, 0 at step 1 and 100 at the last step.
func ProgressPercent(current int) float64 {
	if current < 1 {
		current = 1
	}
	if current > StageCount {
		current = StageCount
	}
	return float64(current-1) / float64(StageCount-1) * 100
}
