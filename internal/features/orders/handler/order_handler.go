package handler

import (
	"errors"
	"net/http"

	"elite-store/internal/core/locale"
	"elite-store/internal/core/logger"
	"elite-store/internal/core/money"
	"elite-store/internal/core/server"
	"elite-store/internal/core/storage"
	"elite-store/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests related to orders.
type OrderHandler struct {
	// service is the OrderService instance.
	service  *service.OrderService
	currency money.Currency
	dates    locale.DateFormatter
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(s *service.OrderService, currency money.Currency, dates locale.DateFormatter) *OrderHandler {
	return &OrderHandler{
		service:  s,
		currency: currency,
		dates:    dates,
	}
}

// GetLastOrder renders the session's most recent order.
// @Summary Order confirmation
// @Description Confirmation view of the session's most recent order.
// @Tags orders
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Success 200 {object} ConfirmationView
// @Failure 404 {object} ErrorResponse
// @Router /orders/last [get]
func (h *OrderHandler) GetLastOrder(c *fiber.Ctx) error {
	sessionID := server.SessionID(c)

	order, err := h.service.Load(c.UserContext(), sessionID)
	if err != nil {
		return h.fail(c, sessionID, "", err)
	}

	return c.Status(http.StatusOK).JSON(NewConfirmationView(order, h.currency, h.dates))
}

// GetOrder handles the request to retrieve an order by number and email.
// @Summary Get Order by number
// @Description Fetch the session's order using its number and the customer email.
// @Tags orders
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param number path string true "Order number"
// @Param email query string true "Customer Email"
// @Success 200 {object} ConfirmationView
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{number} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	orderNumber := c.Params("number")
	email := c.Query("email")
	rayID := server.RayID(c)

	if orderNumber == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Order number is required",
			RayID:   rayID,
		})
	}

	if email == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Email is required",
			RayID:   rayID,
		})
	}

	sessionID := server.SessionID(c)

	order, err := h.service.GetOrder(c.UserContext(), sessionID, orderNumber, email)
	if err != nil {
		return h.fail(c, sessionID, orderNumber, err)
	}

	return c.Status(http.StatusOK).JSON(NewConfirmationView(order, h.currency, h.dates))
}

// Register mounts the order routes. /orders/last must precede /orders/:number.
func (h *OrderHandler) Register(router fiber.Router) {
	router.Get("/orders/last", h.GetLastOrder)
	router.Get("/orders/:number", h.GetOrder)
}

func (h *OrderHandler) fail(c *fiber.Ctx, sessionID, orderNumber string, err error) error {
	rayID := server.RayID(c)
	log := logger.Session(sessionID).With(zap.String("ray_id", rayID), zap.String("order_number", orderNumber))

	status := http.StatusInternalServerError
	msg := "Internal Server Error"

	var parseErr *storage.ParseError
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		status = http.StatusNotFound
		msg = "Order not found"
	case errors.As(err, &parseErr):
		log.Warn("Stored order is unreadable", zap.Error(err))
		status = http.StatusNotFound
		msg = "Order not found"
	case errors.Is(err, service.ErrEmailMismatch):
		status = http.StatusUnauthorized
		msg = "Email mismatch"
	default:
		log.Error("Failed to fetch order", zap.Error(err))
	}

	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID,
	})
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}
