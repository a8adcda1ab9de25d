package budget

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tripbudget/backend/internal/currency"
)

// CategoryTotal is the sum of the expenses of one category.
type CategoryTotal struct {
	Category string          `json:"category" example:"food"`       // Category of the first expense with this label
	Label    string          `json:"label" example:"Food & Dining"` // Display name of the category
	Spent    decimal.Decimal `json:"spent" example:"120.5"`         // Sum of actual expenses
	Planned  decimal.Decimal `json:"planned" example:"80"`          // Sum of planned expenses
	Total    decimal.Decimal `json:"total" example:"200.5"`         // Sum of all expenses
}

// Categories sums up the entries per category label in the base currency.
// A custom category with the same label as a predefined one is summed up
// with it.
//
// The result is sorted by the spent amount, then by the total amount, both
// descending. Ties are sorted by label.
func Categories(entries []Entry, rates currency.Rates, base string) []CategoryTotal {
	unconverted := []string{}
	totals := make(map[string]*CategoryTotal)
	order := []string{}

	for _, e := range entries {
		label := Label(e.Category)

		t, ok := totals[label]
		if !ok {
			t = &CategoryTotal{
				Category: e.Category,
				Label:    label,
				Spent:    decimal.Zero,
				Planned:  decimal.Zero,
				Total:    decimal.Zero,
			}
			totals[label] = t
			order = append(order, label)
		}

		amount := convert(e, base, rates, &unconverted)
		if e.Planned {
			t.Planned = t.Planned.Add(amount)
		} else {
			t.Spent = t.Spent.Add(amount)
		}
		t.Total = t.Total.Add(amount)
	}

	result := make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		result = append(result, *totals[name])
	}

	sort.SliceStable(result, func(i, j int) bool {
		if c := result[i].Spent.Cmp(result[j].Spent); c != 0 {
			return c > 0
		}

		if c := result[i].Total.Cmp(result[j].Total); c != 0 {
			return c > 0
		}

		return result[i].Label < result[j].Label
	})

	return result
}

// Breakdown sums up the actual expenses per category label in the base
// currency. Categories that only have planned expenses are not contained.
func Breakdown(entries []Entry, rates currency.Rates, base string) map[string]decimal.Decimal {
	unconverted := []string{}
	breakdown := make(map[string]decimal.Decimal)

	for _, e := range entries {
		if e.Planned {
			continue
		}

		label := Label(e.Category)

		sum, ok := breakdown[label]
		if !ok {
			sum = decimal.Zero
		}
		breakdown[label] = sum.Add(convert(e, base, rates, &unconverted))
	}

	return breakdown
}

// Top returns the first n category totals. For n <= 0, all totals are returned.
func Top(totals []CategoryTotal, n int) []CategoryTotal {
	if n <= 0 || n >= len(totals) {
		return totals
	}

	return totals[:n]
}
