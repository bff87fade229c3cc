package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"elite-store/internal/core/locale"
	"elite-store/internal/core/money"
	adapter "elite-store/internal/features/tracking/adapters"
	"elite-store/internal/features/tracking/domain"
	"elite-store/internal/features/tracking/ports"
	"elite-store/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingProvider always errors.
type failingProvider struct{}

func (failingProvider) Lookup(ctx context.Context, orderNumber string) (*domain.TrackingRecord, error) {
	return nil, errors.New("upstream unavailable")
}

func (failingProvider) Name() string { return "failing" }

func newTestApp(providers ...ports.TrackingProvider) *fiber.App {
	trackingSvc := service.NewTrackingService(providers)
	handler := NewTrackingHandler(trackingSvc, money.MustParse("EUR"), locale.NewDateFormatter("en-US"))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	handler.Register(app)
	return app
}

// TestTrackingHandler_GetTracking_Shipped verifies the shipped demonstration order view.
func TestTrackingHandler_GetTracking_Shipped(t *testing.T) {
	app := newTestApp(adapter.NewDemoProvider())

	resp, err := app.Test(httptest.NewRequest("GET", "/tracking/es-2025-001234", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var view TrackingView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))

	assert.Equal(t, "ES-2025-001234", view.OrderNumber)
	assert.Equal(t, "September 10, 2025", view.OrderDate)
	assert.Equal(t, "September 13, 2025", view.EstimatedDelivery)
	assert.Equal(t, "€35.99", view.Total)
	assert.Equal(t, domain.TrackingStatusShipped, view.Status)
	assert.Equal(t, "DHL1234567890", view.TrackingNumber)
	assert.Equal(t, "DHL", view.Carrier)
	assert.Equal(t, "https://www.dhl.de/de/privatkunden/pakete-empfangen/verfolgen.html?lang=de&idc=DHL1234567890", view.CarrierLink)
	assert.InDelta(t, 66.667, view.ProgressPercent, 0.001)

	require.Len(t, view.Stages, 4)
	assert.Equal(t, domain.StageComplete, view.Stages[2].State)
	assert.Equal(t, domain.StagePending, view.Stages[3].State)
}

// TestTrackingHandler_GetTracking_Processing verifies placeholder carrier details.
func TestTrackingHandler_GetTracking_Processing(t *testing.T) {
	app := newTestApp(adapter.NewDemoProvider())

	resp, err := app.Test(httptest.NewRequest("GET", "/tracking/ES-2025-001235", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var view TrackingView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))

	assert.Equal(t, "Not yet assigned", view.TrackingNumber)
	assert.Equal(t, "Processing", view.Carrier)
	assert.Empty(t, view.CarrierLink)
	assert.Equal(t, domain.StageInProgress, view.Stages[2].State)
}

// TestTrackingHandler_GetTracking_NotFound verifies the not-found response.
func TestTrackingHandler_GetTracking_NotFound(t *testing.T) {
	app := newTestApp(adapter.NewDemoProvider())

	resp, err := app.Test(httptest.NewRequest("GET", "/tracking/ES-0000", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "Order not found. Please check your order number and try again.", errResp.Message)
	assert.Equal(t, "test-ray-id", errResp.RayID)
}

// TestTrackingHandler_GetTracking_ProviderError verifies provider failures map to 500.
func TestTrackingHandler_GetTracking_ProviderError(t *testing.T) {
	app := newTestApp(failingProvider{})

	resp, err := app.Test(httptest.NewRequest("GET", "/tracking/ES-2025-001234", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
