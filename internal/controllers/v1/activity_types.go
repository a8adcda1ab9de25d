package v1

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tripbudget/backend/internal/models"
)

// ActivityEditable represents all user configurable parameters
type ActivityEditable struct {
	Title       string `json:"title" example:"Fushimi Inari" default:""`               // Title of the activity
	Description string `json:"description" example:"Walk up to the summit" default:""` // A longer description
	Time        string `json:"time" example:"09:30" default:""`                        // Start time in HH:MM format. Empty for activities without a fixed time
	DayIndex    int    `json:"dayIndex" example:"2" minimum:"1"`                       // Day of the trip, starting at 1
	Notes       string `json:"notes" example:"Bring water" default:""`                 // Notes for the activity
	Category    string `json:"category" example:"sightseeing" default:""`              // Category of the activity
	Completed   bool   `json:"completed" example:"false" default:"false"`              // Is the activity done?
	RemindMe    bool   `json:"remindMe" example:"true" default:"false"`                // Should reminders be shown for the activity?
}

// model returns the database resource for the editable fields
func (editable ActivityEditable) model() models.Activity {
	return models.Activity{
		Title:       strings.TrimSpace(editable.Title),
		Description: editable.Description,
		Time:        strings.TrimSpace(editable.Time),
		DayIndex:    editable.DayIndex,
		Notes:       editable.Notes,
		Category:    strings.ToLower(strings.TrimSpace(editable.Category)),
		Completed:   editable.Completed,
		RemindMe:    editable.RemindMe,
	}
}

// Activity is the API v1 representation of an Activity.
type Activity struct {
	models.DefaultModel
	ActivityEditable
	TripID uuid.UUID         `json:"tripId" example:"4ab2b2e5-6a1d-4b1e-b1f0-46e4f3c37a3d"` // ID of the trip
	UserID uuid.UUID         `json:"userId" example:"0b6f0b34-1b3f-4a5a-8c43-8f2b9d0a4a11"` // ID of the user that created the activity
	Links  TripResourceLinks `json:"links"`
}

func newActivity(c *gin.Context, model models.Activity) Activity {
	url := c.GetString(string(models.DBContextURL))

	return Activity{
		DefaultModel: model.DefaultModel,
		ActivityEditable: ActivityEditable{
			Title:       model.Title,
			Description: model.Description,
			Time:        model.Time,
			DayIndex:    model.DayIndex,
			Notes:       model.Notes,
			Category:    model.Category,
			Completed:   model.Completed,
			RemindMe:    model.RemindMe,
		},
		TripID: model.TripID,
		UserID: model.UserID,
		Links: TripResourceLinks{
			Self: fmt.Sprintf("%s/v1/activities/%s", url, model.ID),
			Trip: fmt.Sprintf("%s/v1/trips/%s", url, model.TripID),
		},
	}
}

type ActivityListResponse struct {
	Data  []Activity `json:"data"`                                                          // List of activities
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ActivityCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ActivityResponse `json:"data"`                                                          // List of created Activities
}

func (a *ActivityCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, ActivityResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ActivityResponse struct {
	Data  *Activity `json:"data"`                                                          // Data for the activity
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this activity
}

type ActivityQueryFilter struct {
	Day int `form:"day" example:"2"` // Only return activities of this day of the trip
}

type ReminderListResponse struct {
	Data  []models.Reminder `json:"data"`                                                           // Reminders that are due
	Error *string           `json:"error" example:"the now parameter must be a RFC 3339 timestamp"` // The error, if any occurred
}
