// Package rates provides exchange rate tables. Tables are fetched from a public
// exchange rate provider, cached, and replaced with built-in tables when the
// provider cannot be reached.
package rates

import (
	"time"

	"github.com/tripbudget/backend/internal/currency"
	"golang.org/x/exp/maps"
)

// Table is an exchange rate table anchored at Base.
type Table struct {
	Base      string         `json:"base" example:"USD"`                           // Currency all rates are relative to
	Rates     currency.Rates `json:"rates" swaggertype:"object,string"`            // Rate per currency code
	UpdatedAt time.Time      `json:"updatedAt" example:"2024-03-01T12:00:00.000Z"` // Time the rates were retrieved
	Fallback  bool           `json:"fallback" example:"false"`                     // True if the built-in rates are used because the provider could not be reached
}

// clone returns a copy of the table that does not share its rates.
func (t Table) clone() Table {
	t.Rates = maps.Clone(t.Rates)
	return t
}
