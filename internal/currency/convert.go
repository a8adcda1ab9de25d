package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rates maps currency codes to their rate relative to one implicit base currency.
//
// The base itself is usually present with a rate of 1, but is not required to be.
type Rates map[string]decimal.Decimal

// rate returns the rate for code. A zero rate is treated as absent.
func (r Rates) rate(code string) (decimal.Decimal, bool) {
	v, ok := r[code]
	if !ok || v.IsZero() {
		return decimal.Zero, false
	}
	return v, true
}

// Has reports whether a usable rate for code is present.
func (r Rates) Has(code string) bool {
	_, ok := r.rate(code)
	return ok
}

// Convert converts amount from one currency to another using rates.
//
// When only one of the two rates is known, the missing one is assumed to be the
// base of the table. When neither is known, the amount is returned unchanged.
// Use ConvertChecked if that case needs to be detected.
func Convert(amount decimal.Decimal, from, to string, rates Rates) decimal.Decimal {
	converted, _ := ConvertChecked(amount, from, to, rates)
	return converted
}

// ConvertChecked works like Convert, but returns ErrUnknownRate together with the
// unchanged amount when neither currency has a rate in the table.
func ConvertChecked(amount decimal.Decimal, from, to string, rates Rates) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}

	rateFrom, okFrom := rates.rate(from)
	rateTo, okTo := rates.rate(to)

	switch {
	case okFrom && okTo:
		return amount.Div(rateFrom).Mul(rateTo), nil
	case okTo:
		return amount.Mul(rateTo), nil
	case okFrom:
		return amount.Div(rateFrom), nil
	default:
		return amount, fmt.Errorf("%w: %s to %s", ErrUnknownRate, from, to)
	}
}
