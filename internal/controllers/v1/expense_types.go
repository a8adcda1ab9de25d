package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tripbudget/backend/internal/budget"
	"github.com/tripbudget/backend/internal/currency"
	"github.com/tripbudget/backend/internal/models"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	Name     string          `json:"name" example:"Ramen at Ichiran" default:""`                                                             // Name of the expense
	Amount   decimal.Decimal `json:"amount" example:"14.50" default:"0" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount in the currency of the expense
	Currency string          `json:"currency" example:"JPY"`                                                                                 // Currency of the amount. Defaults to the base currency of the trip
	Category string          `json:"category" example:"food"`                                                                                // Category of the expense. When empty, category rules are applied
	Date     time.Time       `json:"date" example:"2024-04-03T00:00:00Z"`                                                                    // Date of the expense. Defaults to the time of creation
	DateTo   *time.Time      `json:"dateTo" example:"2024-04-05T00:00:00Z"`                                                                  // End date, e.g. the check-out date for hotels
	Planned  bool            `json:"isPlanned" example:"false" default:"false"`                                                              // Is the expense planned but not spent yet?
}

// model returns the database resource for the editable fields
func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Name:     strings.TrimSpace(editable.Name),
		Amount:   editable.Amount,
		Currency: currency.Normalize(editable.Currency),
		Category: strings.ToLower(strings.TrimSpace(editable.Category)),
		Date:     editable.Date,
		DateTo:   editable.DateTo,
		Planned:  editable.Planned,
	}
}

// Expense is the API v1 representation of an Expense.
type Expense struct {
	models.DefaultModel
	ExpenseEditable
	TripID        uuid.UUID         `json:"tripId" example:"4ab2b2e5-6a1d-4b1e-b1f0-46e4f3c37a3d"` // ID of the trip
	UserID        uuid.UUID         `json:"userId" example:"0b6f0b34-1b3f-4a5a-8c43-8f2b9d0a4a11"` // ID of the user that created the expense
	CategoryLabel string            `json:"categoryLabel" example:"Food & Dining"`                 // Display name of the category
	Links         TripResourceLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Name:     model.Name,
			Amount:   model.Amount,
			Currency: model.Currency,
			Category: model.Category,
			Date:     model.Date,
			DateTo:   model.DateTo,
			Planned:  model.Planned,
		},
		TripID:        model.TripID,
		UserID:        model.UserID,
		CategoryLabel: budget.Label(model.Category),
		Links: TripResourceLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
			Trip: fmt.Sprintf("%s/v1/trips/%s", url, model.TripID),
		},
	}
}

type ExpenseListResponse struct {
	Data  []Expense `json:"data"`                                                          // List of expenses
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ExpenseResponse `json:"data"`                                                          // List of created Expenses
}

func (e *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this expense
}

type ExpenseQueryFilter struct {
	Planned  bool   `form:"planned"`  // Is the expense planned?
	Category string `form:"category"` // By category
}

func (f ExpenseQueryFilter) model() models.Expense {
	return models.Expense{
		Planned:  f.Planned,
		Category: strings.ToLower(strings.TrimSpace(f.Category)),
	}
}
