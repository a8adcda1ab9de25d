package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tripbudget/backend/internal/currency"
	"github.com/tripbudget/backend/internal/models"
)

// TripEditable represents all user configurable parameters
type TripEditable struct {
	Title           string          `json:"title" example:"Trip to Japan" default:""`                                                                       // Title of the trip
	AllocatedBudget decimal.Decimal `json:"allocatedBudget" example:"2500" default:"0" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Budget for the trip in the base currency
	BaseCurrency    string          `json:"baseCurrency" example:"EUR"`                                                                                     // Currency all amounts of the trip are converted to
	StartDate       *time.Time      `json:"startDate" example:"2024-04-01T00:00:00Z"`                                                                       // First day of the trip
	EndDate         *time.Time      `json:"endDate" example:"2024-04-10T00:00:00Z"`                                                                         // Last day of the trip
}

// model returns the database resource for the editable fields
func (editable TripEditable) model() models.Trip {
	return models.Trip{
		Title:           strings.TrimSpace(editable.Title),
		AllocatedBudget: editable.AllocatedBudget,
		BaseCurrency:    currency.Normalize(editable.BaseCurrency),
		StartDate:       editable.StartDate,
		EndDate:         editable.EndDate,
	}
}

type TripLinks struct {
	Self             string `json:"self" example:"https://example.com/api/v1/trips/4ab2b2e5-6a1d-4b1e-b1f0-46e4f3c37a3d"`                               // The trip itself
	Budget           string `json:"budget" example:"https://example.com/api/v1/trips/4ab2b2e5-6a1d-4b1e-b1f0-46e4f3c37a3d/budget"`                      // Budget figures of the trip
	Expenses         string `json:"expenses" example:"https://example.com/api/v1/trips/4ab2b2e5-6a1d-4b1e-b1f0-46e4f3c37a3d/expenses"`                  // Expenses of the trip
	Contributors     string `json:"contributors" example:"https://example.com/api/v1/trips/4ab2b2e5-6a1d-4b1e-b1f0-46e4f3c37a3d/contributors"`          // Contributors to the budget of the trip
	CustomCategories string `json:"customCategories" example:"https://example.com/api/v1/trips/4ab2b2e5-6a1d-4b1e-b1f0-46e4f3c37a3d/custom-categories"` // Custom expense categories of the trip
	CategoryRules    string `json:"categoryRules" example:"https://example.com/api/v1/trips/4ab2b2e5-6a1d-4b1e-b1f0-46e4f3c37a3d/category-rules"`       // Rules to categorize expenses
	Activities       string `json:"activities" example:"https://example.com/api/v1/trips/4ab2b2e5-6a1d-4b1e-b1f0-46e4f3c37a3d/activities"`              // Itinerary of the trip
	Reminders        string `json:"reminders" example:"https://example.com/api/v1/trips/4ab2b2e5-6a1d-4b1e-b1f0-46e4f3c37a3d/reminders"`                // Reminders for upcoming activities
	Participants     string `json:"participants" example:"https://example.com/api/v1/trips/4ab2b2e5-6a1d-4b1e-b1f0-46e4f3c37a3d/participants"`          // Participants of the trip
}

// Trip is the API v1 representation of a Trip.
type Trip struct {
	models.DefaultModel
	TripEditable
	OwnerID uuid.UUID          `json:"ownerId" example:"0b6f0b34-1b3f-4a5a-8c43-8f2b9d0a4a11"` // ID of the user owning the trip
	Role    models.Role        `json:"role" example:"owner"`                                   // Role of the authenticated user in the trip
	Days    int                `json:"days" example:"10"`                                      // Number of days of the trip, 0 if the dates are not set
	Status  *models.TripStatus `json:"status"`                                                 // Where the trip is in time. Not set if the dates are not set
	Links   TripLinks          `json:"links"`
}

func newTrip(c *gin.Context, access models.TripAccess, now time.Time) Trip {
	url := c.GetString(string(models.DBContextURL))
	model := access.Trip
	self := fmt.Sprintf("%s/v1/trips/%s", url, model.ID)

	return Trip{
		DefaultModel: model.DefaultModel,
		TripEditable: TripEditable{
			Title:           model.Title,
			AllocatedBudget: model.AllocatedBudget,
			BaseCurrency:    model.BaseCurrency,
			StartDate:       model.StartDate,
			EndDate:         model.EndDate,
		},
		OwnerID: model.OwnerID,
		Role:    access.Role,
		Days:    model.Days(),
		Status:  model.Status(now),
		Links: TripLinks{
			Self:             self,
			Budget:           self + "/budget",
			Expenses:         self + "/expenses",
			Contributors:     self + "/contributors",
			CustomCategories: self + "/custom-categories",
			CategoryRules:    self + "/category-rules",
			Activities:       self + "/activities",
			Reminders:        self + "/reminders",
			Participants:     self + "/participants",
		},
	}
}

type TripListResponse struct {
	Data  []Trip  `json:"data"`                                                          // List of trips
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TripCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TripResponse `json:"data"`                                                          // List of created Trips
}

func (t *TripCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TripResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TripResponse struct {
	Data  *Trip   `json:"data"`                                                          // Data for the trip
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this trip
}
