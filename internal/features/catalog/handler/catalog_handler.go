package handler

import (
	"errors"
	"net/http"

	"elite-store/internal/core/logger"
	"elite-store/internal/core/money"
	"elite-store/internal/core/server"
	"elite-store/internal/features/catalog/domain"
	"elite-store/internal/features/catalog/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CatalogHandler handles HTTP requests for the product catalog.
type CatalogHandler struct {
	service  *service.CatalogService
	currency money.Currency
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(s *service.CatalogService, currency money.Currency) *CatalogHandler {
	return &CatalogHandler{
		service:  s,
		currency: currency,
	}
}

// ProductCard is the storefront rendering of a product.
type ProductCard struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	Brand         string         `json:"brand,omitempty"`
	Category      string         `json:"category"`
	Price         string         `json:"price"`
	OriginalPrice string         `json:"original_price,omitempty"`
	Rating        float64        `json:"rating"`
	Reviews       int            `json:"reviews"`
	Image         string         `json:"image"`
	Gallery       []string       `json:"gallery,omitempty"`
	Size          string         `json:"size,omitempty"`
	Description   string         `json:"description"`
	Features      []string       `json:"features,omitempty"`
	Badges        []domain.Badge `json:"badges"`
}

// NewProductCard renders a product with prices formatted in currency.
func NewProductCard(p *domain.Product, currency money.Currency) ProductCard {
	card := ProductCard{
		ID:          p.ID,
		Name:        p.Name,
		Brand:       p.Brand,
		Category:    p.Category,
		Price:       currency.Format(p.Price),
		Rating:      p.Rating,
		Reviews:     p.Reviews,
		Image:       p.Image,
		Gallery:     p.Gallery,
		Size:        p.Size,
		Description: p.Description,
		Features:    p.Features,
		Badges:      p.Badges(),
	}
	if p.OriginalPrice != nil {
		card.OriginalPrice = currency.Format(*p.OriginalPrice)
	}
	if card.Badges == nil {
		card.Badges = []domain.Badge{}
	}
	return card
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// ListProducts godoc
// @Summary List catalog products
// @Tags catalog
// @Produce json
// @Success 200 {array} ProductCard
// @Failure 500 {object} ErrorResponse
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(c.UserContext())
	if err != nil {
		logger.Get().Error("Failed to list products", zap.String("ray_id", server.RayID(c)), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   server.RayID(c),
		})
	}

	cards := make([]ProductCard, 0, len(products))
	for i := range products {
		cards = append(cards, NewProductCard(&products[i], h.currency))
	}

	return c.JSON(cards)
}

// GetProduct godoc
// @Summary Get a product
// @Tags catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductCard
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Product ID must be a positive integer",
			RayID:   server.RayID(c),
		})
	}

	product, err := h.service.GetProduct(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Product not found",
				RayID:   server.RayID(c),
			})
		}

		logger.Get().Error("Failed to fetch product", zap.Int("product_id", id), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   server.RayID(c),
		})
	}

	return c.JSON(NewProductCard(product, h.currency))
}

// Register mounts the catalog routes.
func (h *CatalogHandler) Register(router fiber.Router) {
	router.Get("/products", h.ListProducts)
	router.Get("/products/:id", h.GetProduct)
}
