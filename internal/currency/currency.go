// Package currency implements the supported currency set and conversion between
// currencies using exchange rate tables anchored at a single base currency.
package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/currency"
)

var (
	ErrInvalidCode  = errors.New("is not a valid ISO 4217 currency code")
	ErrNotSupported = errors.New("is not a supported currency")
	ErrUnknownRate  = errors.New("no exchange rate known for conversion")
)

// Currency is a currency that can be selected as base currency for a trip
// or as currency of an expense.
type Currency struct {
	Code   string `json:"code" example:"EUR"`  // ISO 4217 code
	Symbol string `json:"symbol" example:"€"`  // Symbol used for display
	Name   string `json:"name" example:"Euro"` // English name
}

// Supported is the fixed list of currencies users can choose from.
var Supported = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "CHF", Symbol: "CHF", Name: "Swiss Franc"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "MXN", Symbol: "$", Name: "Mexican Peso"},
	{Code: "MYR", Symbol: "RM", Name: "Malaysian Ringgit"},
	{Code: "SGD", Symbol: "S$", Name: "Singapore Dollar"},
}

// Default is used when no base currency is given.
const Default = "USD"

// Codes returns the codes of all supported currencies.
func Codes() []string {
	codes := make([]string, 0, len(Supported))
	for _, c := range Supported {
		codes = append(codes, c.Code)
	}
	return codes
}

// IsSupported reports whether code is in the supported list.
func IsSupported(code string) bool {
	return slices.ContainsFunc(Supported, func(c Currency) bool {
		return c.Code == code
	})
}

// Normalize upper-cases and trims a currency code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate checks that code is a well-formed ISO 4217 code and that
// it is one of the supported currencies.
func Validate(code string) error {
	if _, err := currency.ParseISO(code); err != nil {
		return fmt.Errorf("'%s' %w", code, ErrInvalidCode)
	}

	if !IsSupported(code) {
		return fmt.Errorf("'%s' %w, use one of %s", code, ErrNotSupported, strings.Join(Codes(), ", "))
	}

	return nil
}

// Symbol returns the display symbol for a currency code.
// Unknown codes are returned as they are.
func Symbol(code string) string {
	i := slices.IndexFunc(Supported, func(c Currency) bool {
		return c.Code == code
	})
	if i < 0 {
		return code
	}

	return Supported[i].Symbol
}

// Format renders an amount for display, rounded to two decimals and
// prefixed with the currency symbol.
func Format(amount decimal.Decimal, code string) string {
	return Symbol(code) + amount.StringFixed(2)
}
