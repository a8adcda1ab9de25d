package budget

import (
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is a predefined expense category.
type Category struct {
	Value       string `json:"value" example:"hotel"`                // Value stored on expenses
	Label       string `json:"label" example:"Hotel"`                // Display name
	DateLabel   string `json:"dateLabel" example:"Check-in Date"`    // Label for the date of an expense
	DateToLabel string `json:"dateToLabel" example:"Check-out Date"` // Label for the end date of an expense
}

// Predefined are the categories offered for new expenses.
var Predefined = []Category{
	{"flight", "Flight", "Departure Date", "Arrival Date"},
	{"hotel", "Hotel", "Check-in Date", "Check-out Date"},
	{"food", "Food & Dining", "Dining Date", "Dining Date"},
	{"transport", "Transport", "Travel Date", "Travel Date"},
	{"shopping", "Shopping", "Shopping Date", "Shopping Date"},
	{"activities", "Activities & Tours", "Activity Date", "Activity Date"},
	{"sightseeing", "Sightseeing", "Activity Date", "Activity Date"},
	{"other", "Other", "Transaction Date", "Transaction Date"},
}

// Lookup returns the category for a value. Custom categories get a
// title cased label and the generic date labels.
func Lookup(value string) Category {
	i := slices.IndexFunc(Predefined, func(c Category) bool { return c.Value == value })
	if i >= 0 {
		return Predefined[i]
	}

	return Category{
		Value:       value,
		Label:       cases.Title(language.English, cases.NoLower).String(value),
		DateLabel:   "Transaction Date",
		DateToLabel: "Transaction Date",
	}
}

// Label returns the display name of a category.
func Label(value string) string {
	return Lookup(value).Label
}
