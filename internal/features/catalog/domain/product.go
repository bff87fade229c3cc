package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidProductID is returned when a product id is not positive.
	ErrInvalidProductID = errors.New("product id must be positive")
	// ErrEmptyProductName is returned when a product has no name.
	ErrEmptyProductName = errors.New("product name is required")
	// ErrInvalidPrice is returned when a price is zero or negative.
	ErrInvalidPrice = errors.New("product price must be positive")
)

// premiumRating is the rating from which a product is badged as premium.
const premiumRating = 4.8

// Product is a sellable catalog item. Products are immutable once the catalog is loaded.
type Product struct {
	// ID is the unique catalog identifier.
	ID int `json:"id"`
	// Name is the display name.
	Name string `json:"name"`
	// Price is the current unit price in the store currency.
	Price decimal.Decimal `json:"price"`
	// OriginalPrice is the pre-discount price, nil when the product is not discounted.
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	// Image is the primary image path.
	Image string `json:"image"`
	// Gallery lists every image path, primary first.
	Gallery []string `json:"gallery,omitempty"`
	// Rating is the average review score out of 5.
	Rating float64 `json:"rating"`
	// Reviews is the number of reviews.
	Reviews int `json:"reviews"`
	// Category groups products on the storefront (e.g. "Cleansers").
	Category string `json:"category"`
	// Brand is the manufacturer name.
	Brand string `json:"brand,omitempty"`
	// Size is the human-readable pack size.
	Size string `json:"size,omitempty"`
	// Description is the long product description.
	Description string `json:"description"`
	// Features lists short selling points.
	Features []string `json:"features,omitempty"`
}

// NewProduct creates a product and validates its invariants.
func NewProduct(id int, name string, price decimal.Decimal) (*Product, error) {
	p := &Product{
		ID:    id,
		Name:  strings.TrimSpace(name),
		Price: price,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the invariants every catalog product must hold.
func (p *Product) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidProductID, p.ID)
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyProductName
	}
	if !p.Price.IsPositive() {
		return fmt.Errorf("%w: %s", ErrInvalidPrice, p.Price)
	}
	if p.OriginalPrice != nil && !p.OriginalPrice.IsPositive() {
		return fmt.Errorf("%w: original %s", ErrInvalidPrice, p.OriginalPrice)
	}
	return nil
}

// BadgeKind classifies a product badge for styling.
type BadgeKind string

const (
	BadgeBestSeller BadgeKind = "best_seller"
	BadgePremium    BadgeKind = "premium"
	BadgeLimited    BadgeKind = "limited"
	BadgeDiscount   BadgeKind = "discount"
)

// Badge is a short label shown on a product card.
type Badge struct {
	Text string    `json:"text"`
	Kind BadgeKind `json:"kind"`
}

// Badges returns the product's card badges in display order.
func (p *Product) Badges() []Badge {
	var badges []Badge

	if p.ID == 1 {
		badges = append(badges, Badge{Text: "Best Seller", Kind: BadgeBestSeller})
	}
	if p.Rating >= premiumRating {
		badges = append(badges, Badge{Text: "Premium", Kind: BadgePremium})
	}
	if p.ID == 3 || p.ID == 5 {
		badges = append(badges, Badge{Text: "Limited", Kind: BadgeLimited})
	}
	if pct, ok := p.DiscountPercent(); ok {
		badges = append(badges, Badge{Text: fmt.Sprintf("-%d%%", pct), Kind: BadgeDiscount})
	}

	return badges
}

// DiscountPercent returns round((1 - price/original) * 100) when the product has an original price.
func (p *Product) DiscountPercent() (int64, bool) {
	if p.OriginalPrice == nil || !p.OriginalPrice.IsPositive() {
		return 0, false
	}

	ratio := p.Price.DivRound(*p.OriginalPrice, 8)
	return decimal.NewFromInt(1).Sub(ratio).Mul(decimal.NewFromInt(100)).Round(0).IntPart(), true
}
