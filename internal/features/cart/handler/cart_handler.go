package handler

import (
	"context"
	"errors"
	"net/http"

	"elite-store/internal/core/logger"
	"elite-store/internal/core/money"
	"elite-store/internal/core/server"
	"elite-store/internal/features/cart/domain"
	"elite-store/internal/features/cart/service"
	catalog "elite-store/internal/features/catalog/domain"
	catalogservice "elite-store/internal/features/catalog/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProductLookup resolves product ids to catalog products.
type ProductLookup interface {
	GetProduct(ctx context.Context, id int) (*catalog.Product, error)
}

// CartHandler handles HTTP requests that read and mutate the session cart.
type CartHandler struct {
	carts    *service.Registry
	products ProductLookup
	currency money.Currency
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(carts *service.Registry, products ProductLookup, currency money.Currency) *CartHandler {
	return &CartHandler{
		carts:    carts,
		products: products,
		currency: currency,
	}
}

// AddItemRequest is the body of POST /cart/items.
type AddItemRequest struct {
	ProductID int `json:"productId"`
}

// SetQuantityRequest is the body of PUT /cart/items/{id}.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ChangeQuantityRequest is the body of PATCH /cart/items/{id}.
type ChangeQuantityRequest struct {
	Delta int `json:"delta"`
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// GetCart godoc
// @Summary Get the session cart
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Success 200 {object} CartView
// @Router /cart [get]
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	store := h.carts.Store(c.UserContext(), server.SessionID(c))
	return c.JSON(h.view(store))
}

// AddItem godoc
// @Summary Add a product to the cart
// @Description Increments the product's line or appends it with quantity 1.
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param item body AddItemRequest true "Product to add"
// @Success 200 {object} CartView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil || req.ProductID <= 0 {
		return h.fail(c, http.StatusBadRequest, "productId must be a positive integer")
	}

	product, err := h.products.GetProduct(c.UserContext(), req.ProductID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrProductNotFound) {
			return h.fail(c, http.StatusNotFound, "Product not found")
		}
		logger.Get().Error("Failed to resolve product", zap.Int("product_id", req.ProductID), zap.Error(err))
		return h.fail(c, http.StatusInternalServerError, "Internal Server Error")
	}

	store := h.carts.Store(c.UserContext(), server.SessionID(c))
	if err := store.Add(c.UserContext(), *product); err != nil {
		return h.fail(c, http.StatusInternalServerError, "Failed to save cart")
	}

	return c.JSON(h.view(store))
}

// SetQuantity godoc
// @Summary Set a cart line quantity
// @Description A quantity of 0 or less removes the line. Quantities above 999 are rejected.
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param id path int true "Product ID"
// @Param quantity body SetQuantityRequest true "New quantity"
// @Success 200 {object} CartView
// @Failure 400 {object} ErrorResponse
// @Router /cart/items/{id} [put]
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return h.fail(c, http.StatusBadRequest, "Product ID must be a positive integer")
	}

	var req SetQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Quantity > domain.MaxQuantity {
		return h.fail(c, http.StatusBadRequest, "quantity exceeds the per-line limit")
	}

	store := h.carts.Store(c.UserContext(), server.SessionID(c))
	if err := store.SetQuantity(c.UserContext(), id, req.Quantity); err != nil {
		return h.fail(c, http.StatusInternalServerError, "Failed to save cart")
	}

	return c.JSON(h.view(store))
}

// ChangeQuantity godoc
// @Summary Adjust a cart line quantity by a delta
// @Description The delta must lie within [-999, 999].
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param id path int true "Product ID"
// @Param delta body ChangeQuantityRequest true "Quantity delta"
// @Success 200 {object} CartView
// @Failure 400 {object} ErrorResponse
// @Router /cart/items/{id} [patch]
func (h *CartHandler) ChangeQuantity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return h.fail(c, http.StatusBadRequest, "Product ID must be a positive integer")
	}

	var req ChangeQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Delta > domain.MaxQuantity || req.Delta < -domain.MaxQuantity {
		return h.fail(c, http.StatusBadRequest, "delta exceeds the per-line limit")
	}

	store := h.carts.Store(c.UserContext(), server.SessionID(c))
	if err := store.ChangeQuantity(c.UserContext(), id, req.Delta); err != nil {
		return h.fail(c, http.StatusInternalServerError, "Failed to save cart")
	}

	return c.JSON(h.view(store))
}

// RemoveItem godoc
// @Summary Remove a product from the cart
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param id path int true "Product ID"
// @Success 200 {object} CartView
// @Failure 400 {object} ErrorResponse
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return h.fail(c, http.StatusBadRequest, "Product ID must be a positive integer")
	}

	store := h.carts.Store(c.UserContext(), server.SessionID(c))
	if err := store.Remove(c.UserContext(), id); err != nil {
		return h.fail(c, http.StatusInternalServerError, "Failed to save cart")
	}

	return c.JSON(h.view(store))
}

// Register mounts the cart routes.
func (h *CartHandler) Register(router fiber.Router) {
	router.Get("/cart", h.GetCart)
	router.Post("/cart/items", h.AddItem)
	router.Put("/cart/items/:id", h.SetQuantity)
	router.Patch("/cart/items/:id", h.ChangeQuantity)
	router.Delete("/cart/items/:id", h.RemoveItem)
}

func (h *CartHandler) view(store *service.Store) CartView {
	lines, totals := store.Snapshot()
	return NewCartView(lines, totals, h.currency)
}

func (h *CartHandler) fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   server.RayID(c),
	})
}
