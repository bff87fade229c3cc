package domain

import (
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the current state of an order.
type OrderStatus string

// OrderStatusConfirmed is the only status a storefront order is created with.
const OrderStatusConfirmed OrderStatus = "confirmed"

const (
	orderNumberPrefix = "ES-"
	orderNumberLength = 9

	// DefaultDeliveryLeadTime is added to the order date to estimate delivery.
	DefaultDeliveryLeadTime = 7 * 24 * time.Hour

	// FallbackCardLast4 is shown when the payment processor returns no card suffix.
	FallbackCardLast4 = "XXXX"
	// FallbackCardBrand is shown when the payment processor returns no card network.
	FallbackCardBrand = "card"
)

var (
	// ErrMissingOrderNumber is returned when an order has no number.
	ErrMissingOrderNumber = errors.New("order number is required")
	// ErrMissingCustomer is returned when the customer name or email is empty.
	ErrMissingCustomer = errors.New("customer name and email are required")
	// ErrNoItems is returned when an order has no items.
	ErrNoItems = errors.New("order must contain at least one item")
)

// Address is a shipping address. The same shape is used for checkout input,
// the payment-intent request and the stored order.
type Address struct {
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// Customer is the contact snapshot taken at checkout.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Item is a purchased line, decoupled from the live catalog.
type Item struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
}

// Total returns unit price times quantity.
func (i Item) Total() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Totals are the order's money figures. Shipping is always zero.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// PaymentSummary is the masked card used for the payment.
type PaymentSummary struct {
	CardLast4 string `json:"cardLast4"`
	CardBrand string `json:"cardBrand"`
}

// NewPaymentSummary applies the "XXXX" and "card" placeholders to missing values.
func NewPaymentSummary(last4, brand string) PaymentSummary {
	if last4 == "" {
		last4 = FallbackCardLast4
	}
	if brand == "" {
		brand = FallbackCardBrand
	}
	return PaymentSummary{CardLast4: last4, CardBrand: brand}
}

// Order is a completed purchase. It is immutable once created.
type Order struct {
	OrderNumber       string         `json:"orderNumber"`
	CustomerInfo      Customer       `json:"customerInfo"`
	ShippingAddress   Address        `json:"shippingAddress"`
	Items             []Item         `json:"items"`
	Totals            Totals         `json:"totals"`
	PaymentInfo       PaymentSummary `json:"paymentInfo"`
	OrderDate         time.Time      `json:"orderDate"`
	EstimatedDelivery time.Time      `json:"estimatedDelivery"`
	Status            OrderStatus    `json:"status"`
}

// OrderParams carries everything needed to create an order.
type OrderParams struct {
	Number    string
	Customer  Customer
	Address   Address
	Items     []Item
	Amount    decimal.Decimal
	Payment   PaymentSummary
	OrderedAt time.Time
	LeadTime  time.Duration
}

// NewOrder creates a confirmed order. Subtotal and total both equal the paid amount.
func NewOrder(p OrderParams) (*Order, error) {
	if err := checkRequired(p.Number, p.Customer, len(p.Items)); err != nil {
		return nil, err
	}

	leadTime := p.LeadTime
	if leadTime <= 0 {
		leadTime = DefaultDeliveryLeadTime
	}

	items := make([]Item, len(p.Items))
	copy(items, p.Items)

	orderedAt := p.OrderedAt.UTC()

	return &Order{
		OrderNumber:     p.Number,
		CustomerInfo:    p.Customer,
		ShippingAddress: p.Address,
		Items:           items,
		Totals: Totals{
			Subtotal: p.Amount,
			Shipping: decimal.Zero,
			Total:    p.Amount,
		},
		PaymentInfo:       NewPaymentSummary(p.Payment.CardLast4, p.Payment.CardBrand),
		OrderDate:         orderedAt,
		EstimatedDelivery: orderedAt.Add(leadTime),
		Status:            OrderStatusConfirmed,
	}, nil
}

// Validate checks the invariants NewOrder enforces. It guards records read back from storage.
func (o *Order) Validate() error {
	return checkRequired(o.OrderNumber, o.CustomerInfo, len(o.Items))
}

func checkRequired(number string, customer Customer, items int) error {
	if strings.TrimSpace(number) == "" {
		return ErrMissingOrderNumber
	}
	if strings.TrimSpace(customer.Name) == "" || strings.TrimSpace(customer.Email) == "" {
		return ErrMissingCustomer
	}
	if items == 0 {
		return ErrNoItems
	}
	return nil
}

// NewOrderNumber returns "ES-" followed by 9 upper-case base-36 characters.
func NewOrderNumber() string {
	id := uuid.New()
	digits := strings.ToUpper(new(big.Int).SetBytes(id[:]).Text(36))

	if len(digits) < orderNumberLength {
		digits = strings.Repeat("0", orderNumberLength-len(digits)) + digits
	}

	return orderNumberPrefix + digits[len(digits)-orderNumberLength:]
}
