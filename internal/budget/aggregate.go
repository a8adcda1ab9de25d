// Package budget computes budget figures for a trip from its expenses.
//
// All functions are pure: they convert the amounts of the expenses into the
// base currency of the trip with the rate table they are given and sum them up.
package budget

import (
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/tripbudget/backend/internal/currency"
	"golang.org/x/exp/slices"
)

var hundred = decimal.NewFromInt(100)

// Entry is an expense as seen by the budget calculations.
type Entry struct {
	Amount   decimal.Decimal
	Currency string
	Category string
	Planned  bool
}

// Snapshot contains the budget figures for a trip at the time of calculation.
type Snapshot struct {
	TotalSpent         decimal.Decimal `json:"totalSpent" example:"742.5"`        // Sum of all actual expenses
	TotalPlanned       decimal.Decimal `json:"totalPlanned" example:"200"`        // Sum of all planned expenses
	ActualRemaining    decimal.Decimal `json:"actualRemaining" example:"257.5"`   // Allocated budget minus actual expenses. Negative when over budget
	ProjectedRemaining decimal.Decimal `json:"projectedRemaining" example:"57.5"` // Allocated budget minus actual and planned expenses
	PercentageSpent    decimal.Decimal `json:"percentageSpent" example:"74.25"`   // Share of the allocated budget spent. 0 if no budget is allocated
	Unconverted        []string        `json:"unconverted" example:"SEK"`         // Currencies without an exchange rate. Amounts in these currencies are summed up unconverted
}

// convert converts the amount of an entry into base. When no rate is known, the
// amount is used unchanged and the currency is recorded in unconverted.
func convert(e Entry, base string, rates currency.Rates, unconverted *[]string) decimal.Decimal {
	amount, err := currency.ConvertChecked(e.Amount, e.Currency, base, rates)
	if err != nil {
		if !slices.Contains(*unconverted, e.Currency) {
			log.Warn().Str("currency", e.Currency).Str("base", base).Msg("no exchange rate available, using amount unconverted")
			*unconverted = append(*unconverted, e.Currency)
		}
	}

	return amount
}

// Aggregate computes the budget snapshot for the entries.
func Aggregate(entries []Entry, allocated decimal.Decimal, rates currency.Rates, base string) Snapshot {
	spent := decimal.Zero
	planned := decimal.Zero
	unconverted := []string{}

	for _, e := range entries {
		amount := convert(e, base, rates, &unconverted)

		if e.Planned {
			planned = planned.Add(amount)
		} else {
			spent = spent.Add(amount)
		}
	}

	percentage := decimal.Zero
	if allocated.IsPositive() {
		percentage = spent.Div(allocated).Mul(hundred)
	}

	return Snapshot{
		TotalSpent:         spent,
		TotalPlanned:       planned,
		ActualRemaining:    allocated.Sub(spent),
		ProjectedRemaining: allocated.Sub(spent).Sub(planned),
		PercentageSpent:    percentage,
		Unconverted:        unconverted,
	}
}
