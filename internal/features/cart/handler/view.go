package handler

import (
	"elite-store/internal/core/money"
	"elite-store/internal/features/cart/domain"
)

// LineView is a cart line as rendered in the cart drawer and checkout summary.
type LineView struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

// CartView is the rendered cart with formatted totals.
type CartView struct {
	Lines     []LineView `json:"lines"`
	ItemCount int        `json:"item_count"`
	Subtotal  string     `json:"subtotal"`
	Total     string     `json:"total"`
	Empty     bool       `json:"empty"`
}

// NewCartView renders lines and totals in currency. Shipping is free, so total equals subtotal.
func NewCartView(lines []domain.Line, totals domain.Totals, currency money.Currency) CartView {
	view := CartView{
		Lines:     make([]LineView, 0, len(lines)),
		ItemCount: totals.ItemCount,
		Subtotal:  currency.Format(totals.Subtotal),
		Total:     currency.Format(totals.Subtotal),
		Empty:     len(lines) == 0,
	}

	for _, l := range lines {
		view.Lines = append(view.Lines, LineView{
			ProductID: l.ID,
			Name:      l.Name,
			Image:     l.Image,
			UnitPrice: currency.Format(l.Price),
			Quantity:  l.Quantity,
			LineTotal: currency.Format(l.Total()),
		})
	}

	return view
}
