package handler

import (
	"errors"

	"elite-store/internal/core/locale"
	"elite-store/internal/core/logger"
	"elite-store/internal/core/money"
	"elite-store/internal/core/server"
	"elite-store/internal/features/tracking/domain"
	"elite-store/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	unassignedTrackingNumber = "Not yet assigned"
	pendingCarrier           = "Processing"
)

// TrackingHandler handles HTTP requests for tracking operations.
type TrackingHandler struct {
	trackingService *service.TrackingService
	currency        money.Currency
	dates           locale.DateFormatter
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService *service.TrackingService, currency money.Currency, dates locale.DateFormatter) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
		currency:        currency,
		dates:           dates,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// TrackingView is the rendered tracking page.
type TrackingView struct {
	OrderNumber       string                `json:"order_number"`
	OrderDate         string                `json:"order_date"`
	Total             string                `json:"total"`
	Status            domain.TrackingStatus `json:"status"`
	TrackingNumber    string                `json:"tracking_number"`
	Carrier           string                `json:"carrier"`
	CarrierLink       string                `json:"carrier_link,omitempty"`
	EstimatedDelivery string                `json:"estimated_delivery"`
	Stages            []domain.Stage        `json:"stages"`
	ProgressPercent   float64               `json:"progress_percent"`
}

// NewTrackingView renders a tracking record.
func NewTrackingView(r *domain.TrackingRecord, currency money.Currency, dates locale.DateFormatter) TrackingView {
	view := TrackingView{
		OrderNumber:       r.OrderNumber,
		OrderDate:         dates.Long(r.OrderDate),
		Total:             currency.Format(r.Total),
		Status:            r.Status,
		TrackingNumber:    r.TrackingNumber,
		Carrier:           r.Carrier,
		CarrierLink:       r.CarrierLink(),
		EstimatedDelivery: dates.Long(r.EstimatedDelivery),
		Stages:            domain.Progress(r.CurrentStep),
		ProgressPercent:   domain.ProgressPercent(r.CurrentStep),
	}

	if view.TrackingNumber == "" {
		view.TrackingNumber = unassignedTrackingNumber
	}
	if view.Carrier == "" {
		view.Carrier = pendingCarrier
	}

	return view
}

// GetTracking godoc
// @Summary Track an order
// @Description Looks up the shipment status of an order number (case-insensitive).
// @Tags tracking
// @Accept json
// @Produce json
// @Param orderNumber path string true "Order number"
// @Success 200 {object} TrackingView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tracking/{orderNumber} [get]
func (h *TrackingHandler) GetTracking(c *fiber.Ctx) error {
	orderNumber := c.Params("orderNumber")

	record, err := h.trackingService.Lookup(c.UserContext(), orderNumber)
	if err != nil {
		if errors.Is(err, service.ErrOrderNumberRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: "Please enter an order number",
				RayID:   server.RayID(c),
			})
		}

		if errors.Is(err, service.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Message: "Order not found. Please check your order number and try again.",
				RayID:   server.RayID(c),
			})
		}

		logger.Get().Error("Tracking lookup failed", zap.String("order_number", orderNumber), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   server.RayID(c),
		})
	}

	return c.JSON(NewTrackingView(record, h.currency, h.dates))
}

// Register mounts the tracking routes.
func (h *TrackingHandler) Register(router fiber.Router) {
	router.Get("/tracking/:orderNumber", h.GetTracking)
}
