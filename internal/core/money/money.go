// Package money converts between decimal amounts, payment minor units and
// display strings for the store currency.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var symbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
	"JPY": "¥",
	"BRL": "R$",
}

// Currency is an ISO 4217 currency with its minor-unit scale.
type Currency struct {
	unit   currency.Unit
	scale  int32
	symbol string
}

// Parse resolves an ISO 4217 code such as "EUR" or "usd".
func Parse(code string) (Currency, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return Currency{}, fmt.Errorf("invalid currency %q: %w", code, err)
	}

	scale, _ := currency.Standard.Rounding(unit)

	symbol, ok := symbols[unit.String()]
	if !ok {
		symbol = unit.String() + " "
	}

	return Currency{unit: unit, scale: int32(scale), symbol: symbol}, nil
}

// EUR is the store's default currency.
var EUR = MustParse("EUR")

// MustParse is Parse for compile-time constants.
func MustParse(code string) Currency {
	c, err := Parse(code)
	if err != nil {
		panic(err)
	}
	return c
}

// IsZero reports whether c is the zero Currency rather than a parsed one.
func (c Currency) IsZero() bool {
	return c.symbol == ""
}

// Code returns the upper-case ISO code.
func (c Currency) Code() string {
	return c.unit.String()
}

// FromMinor converts an integer amount of minor units (cents) to a decimal.
func (c Currency) FromMinor(minor int64) decimal.Decimal {
	return decimal.New(minor, -c.scale)
}

// ToMinor converts a decimal amount to minor units, rounding half away from zero.
func (c Currency) ToMinor(amount decimal.Decimal) int64 {
	return amount.Shift(c.scale).Round(0).IntPart()
}

// Format renders an amount as symbol plus fixed decimals, e.g. "€16.99".
func (c Currency) Format(amount decimal.Decimal) string {
	return c.symbol + amount.StringFixed(c.scale)
}
