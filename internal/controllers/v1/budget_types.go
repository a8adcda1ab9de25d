package v1

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tripbudget/backend/internal/budget"
	"github.com/tripbudget/backend/internal/models"
)

// RateInfo describes the exchange rate table the figures were computed with.
type RateInfo struct {
	Base      string    `json:"base" example:"EUR"`                           // Base currency of the trip
	UpdatedAt time.Time `json:"updatedAt" example:"2024-03-01T12:00:00.000Z"` // Time the rates were retrieved
	Fallback  bool      `json:"fallback" example:"false"`                     // True if the built-in rates were used
}

// Budget contains all budget figures of a trip, converted into its base currency.
type Budget struct {
	Snapshot    budget.Snapshot            `json:"snapshot"`                              // Totals of the trip
	Contributed decimal.Decimal            `json:"contributed" example:"1500"`            // Sum of the amounts of all contributors
	Categories  []budget.CategoryTotal     `json:"categories"`                            // Totals per category, highest spending first
	Breakdown   map[string]decimal.Decimal `json:"breakdown" swaggertype:"object,string"` // Sum of the actual expenses per category label
	Alerts      []budget.Alert             `json:"alerts"`                                // Budget alerts that apply to the trip
	Status      *models.TripStatus         `json:"status"`                                // Where the trip is in time. Not set if the dates are not set
	Rates       RateInfo                   `json:"rates"`                                 // Exchange rates used
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Budget figures of the trip
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetQuery struct {
	Top int `form:"top" example:"5"` // Only return the categories with the highest spending. 0 returns all categories
}
