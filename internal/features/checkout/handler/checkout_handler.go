package handler

import (
	"errors"
	"net/http"

	"elite-store/internal/core/logger"
	"elite-store/internal/core/money"
	"elite-store/internal/core/server"
	cartview "elite-store/internal/features/cart/handler"
	"elite-store/internal/features/checkout/domain"
	"elite-store/internal/features/checkout/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CheckoutHandler serves the checkout page state and form submissions.
type CheckoutHandler struct {
	sessions *service.Sessions
	carts    service.CartLookup
	currency money.Currency
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(sessions *service.Sessions, carts service.CartLookup, currency money.Currency) *CheckoutHandler {
	return &CheckoutHandler{
		sessions: sessions,
		carts:    carts,
		currency: currency,
	}
}

// SubmitRequest is the body of POST /checkout.
type SubmitRequest struct {
	domain.FormInput
	// CardToken is the single-use token produced by the card widget.
	CardToken string `json:"cardToken"`
}

// CheckoutView is the order summary next to the current form state.
type CheckoutView struct {
	Summary cartview.CartView `json:"summary"`
	Form    service.FormState `json:"form"`
}

// SubmitResponse is returned after a successful payment.
type SubmitResponse struct {
	OrderNumber string            `json:"order_number"`
	Form        service.FormState `json:"form"`
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the text shown inline on the form.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
	// Field names the invalid form field, if any.
	Field string `json:"field,omitempty"`
	// Form is the form state after the failed attempt.
	Form *service.FormState `json:"form,omitempty"`
}

// GetCheckout godoc
// @Summary Get the checkout page state
// @Description Returns the order summary and whether the form can be submitted.
// @Tags checkout
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Success 200 {object} CheckoutView
// @Router /checkout [get]
func (h *CheckoutHandler) GetCheckout(c *fiber.Ctx) error {
	sessionID := server.SessionID(c)
	sess := h.sessions.Get(c.UserContext(), sessionID)

	lines, totals := h.carts(c.UserContext(), sessionID).Snapshot()

	return c.JSON(CheckoutView{
		Summary: cartview.NewCartView(lines, totals, h.currency),
		Form:    sess.View.Snapshot(),
	})
}

// Submit godoc
// @Summary Submit the checkout form
// @Description Validates the form, charges the card and records the order. The cart is emptied on success.
// @Tags checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param checkout body SubmitRequest true "Customer details and card token"
// @Success 200 {object} SubmitResponse
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /checkout [post]
func (h *CheckoutHandler) Submit(c *fiber.Ctx) error {
	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   server.RayID(c),
		})
	}

	sessionID := server.SessionID(c)
	sess := h.sessions.Get(c.UserContext(), sessionID)

	order, err := sess.Orchestrator.Submit(c.UserContext(), req.FormInput, domain.CardInput{Token: req.CardToken})
	if err != nil {
		return h.fail(c, sessionID, sess, err)
	}

	return c.JSON(SubmitResponse{
		OrderNumber: order.OrderNumber,
		Form:        sess.View.Snapshot(),
	})
}

func (h *CheckoutHandler) fail(c *fiber.Ctx, sessionID string, sess *service.Session, err error) error {
	rayID := server.RayID(c)
	form := sess.View.Snapshot()

	resp := ErrorResponse{
		Message: domain.UserMessage(err),
		RayID:   rayID,
		Form:    &form,
	}

	var (
		validationErr *domain.ValidationError
		intentErr     *domain.PaymentIntentError
	)

	status := http.StatusPaymentRequired
	switch {
	case errors.Is(err, domain.ErrCheckoutInProgress):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrEmptyCart):
		status = http.StatusUnprocessableEntity
	case errors.As(err, &validationErr):
		status = http.StatusUnprocessableEntity
		resp.Field = validationErr.Field
	case errors.As(err, &intentErr):
		status = http.StatusBadGateway
		logger.Session(sessionID).Error("Payment intent request failed", zap.String("ray_id", rayID), zap.Error(err))
	}

	return c.Status(status).JSON(resp)
}

// Register mounts the checkout routes.
func (h *CheckoutHandler) Register(router fiber.Router) {
	router.Get("/checkout", h.GetCheckout)
	router.Post("/checkout", h.Submit)
}
