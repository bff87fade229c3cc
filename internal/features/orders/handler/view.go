package handler

import (
	"net/url"
	"strings"

	"elite-store/internal/core/locale"
	"elite-store/internal/core/money"
	"elite-store/internal/features/orders/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ItemView is a purchased line on the confirmation page.
type ItemView struct {
	Name      string `json:"name"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

// ConfirmationView is the rendered order confirmation page.
type ConfirmationView struct {
	OrderNumber       string             `json:"order_number"`
	Status            domain.OrderStatus `json:"status"`
	Customer          domain.Customer    `json:"customer"`
	OrderDate         string             `json:"order_date"`
	EstimatedDelivery string             `json:"estimated_delivery"`
	ShippingAddress   []string           `json:"shipping_address"`
	DeliveryAddress   string             `json:"delivery_address"`
	Items             []ItemView         `json:"items"`
	Subtotal          string             `json:"subtotal"`
	Shipping          string             `json:"shipping"`
	Total             string             `json:"total"`
	CardInfo          string             `json:"card_info"`
	CardBrand         string             `json:"card_brand"`
	EmailLink         string             `json:"email_link"`
}

// NewConfirmationView renders an order for the confirmation page.
func NewConfirmationView(o *domain.Order, currency money.Currency, dates locale.DateFormatter) ConfirmationView {
	payment := domain.NewPaymentSummary(o.PaymentInfo.CardLast4, o.PaymentInfo.CardBrand)

	view := ConfirmationView{
		OrderNumber:       o.OrderNumber,
		Status:            o.Status,
		Customer:          o.CustomerInfo,
		OrderDate:         dates.Long(o.OrderDate),
		EstimatedDelivery: dates.Long(o.EstimatedDelivery),
		ShippingAddress:   addressLines(o.CustomerInfo.Name, o.ShippingAddress),
		DeliveryAddress:   deliveryAddress(o.ShippingAddress),
		Items:             make([]ItemView, 0, len(o.Items)),
		Subtotal:          currency.Format(o.Totals.Subtotal),
		Shipping:          currency.Format(o.Totals.Shipping),
		Total:             currency.Format(o.Totals.Total),
		CardInfo:          "Credit Card ending in " + payment.CardLast4,
		CardBrand:         cases.Title(language.Und).String(payment.CardBrand),
		EmailLink:         emailLink(o.CustomerInfo.Email, o.OrderNumber),
	}

	for _, item := range o.Items {
		view.Items = append(view.Items, ItemView{
			Name:      item.Name,
			Image:     item.Image,
			Quantity:  item.Quantity,
			UnitPrice: currency.Format(item.Price),
			LineTotal: currency.Format(item.Total()),
		})
	}

	return view
}

func addressLines(name string, a domain.Address) []string {
	lines := []string{name, a.Line1}
	if a.Line2 != "" {
		lines = append(lines, a.Line2)
	}
	lines = append(lines, strings.TrimSpace(a.PostalCode+" "+a.City))
	if a.State != "" {
		lines = append(lines, a.State)
	}
	return append(lines, a.Country)
}

func deliveryAddress(a domain.Address) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Line1, a.City, a.PostalCode, a.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func emailLink(email, orderNumber string) string {
	subject := "Order Confirmation - " + orderNumber
	body := "Your order " + orderNumber + " has been confirmed and will be processed shortly."
	return "mailto:" + email + "?subject=" + encodeComponent(subject) + "&body=" + encodeComponent(body)
}

// encodeComponent percent-encodes like a URI component: spaces become %20, not "+".
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
