package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripbudget/backend/internal/httputil"
	"github.com/tripbudget/backend/internal/models"
)

// RegisterActivityRoutes registers the routes for activities with
// the RouterGroup that is passed.
func RegisterActivityRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id", OptionsActivityDetail)
	r.GET("/:id", GetActivity)
	r.PATCH("/:id", UpdateActivity)
	r.DELETE("/:id", DeleteActivity)
}

// getActivity returns the activity with the ID from the URI together with
// the access of the user to its trip.
func getActivity(c *gin.Context) (models.Activity, models.TripAccess, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Activity{}, models.TripAccess{}, err
	}

	var activity models.Activity
	err = models.DB.First(&activity, uri.ID.UUID).Error
	if err != nil {
		return models.Activity{}, models.TripAccess{}, err
	}

	access, err := models.AccessTrip(models.DB, activity.TripID, currentUser(c).ID)
	if err != nil {
		return models.Activity{}, models.TripAccess{}, err
	}

	return activity, access, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Activities
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/activities/{id} [options]
func OptionsActivityDetail(c *gin.Context) {
	_, _, err := getActivity(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.Options(c, http.MethodGet, http.MethodPatch, http.MethodDelete)
}

// @Summary		Create activities
// @Description	Adds activities to the itinerary of a trip
// @Tags			Activities
// @Produce		json
// @Success		201			{object}	ActivityCreateResponse
// @Failure		400			{object}	ActivityCreateResponse
// @Failure		404			{object}	ActivityCreateResponse
// @Failure		500			{object}	ActivityCreateResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			activities	body		[]ActivityEditable	true	"Activities"
// @Router			/v1/trips/{id}/activities [post]
func CreateActivities(c *gin.Context) {
	access, err := accessTrip(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ActivityCreateResponse{
			Error: &e,
		})
		return
	}

	var editables []ActivityEditable

	// Bind data and return error if not possible
	err = httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ActivityCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ActivityCreateResponse{}

	for _, editable := range editables {
		activity := editable.model()
		activity.TripID = access.Trip.ID
		activity.UserID = access.UserID

		err = models.DB.Create(&activity).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newActivity(c, activity)
		r.Data = append(r.Data, ActivityResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get activities
// @Description	Returns the itinerary of a trip ordered by day and time. Activities without a time are listed last for their day.
// @Tags			Activities
// @Produce		json
// @Success		200	{object}	ActivityListResponse
// @Failure		400	{object}	ActivityListResponse
// @Failure		404	{object}	ActivityListResponse
// @Failure		500	{object}	ActivityListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			day	query		int		false	"Only return activities of this day of the trip"
// @Router			/v1/trips/{id}/activities [get]
func GetActivities(c *gin.Context) {
	access, err := accessTrip(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ActivityListResponse{
			Error: &s,
		})
		return
	}

	var filter ActivityQueryFilter
	err = c.ShouldBindQuery(&filter)
	if err != nil || filter.Day < 0 {
		s := errDayInvalid.Error()
		c.JSON(http.StatusBadRequest, ActivityListResponse{
			Error: &s,
		})
		return
	}

	activities, err := access.Trip.Activities(models.DB, filter.Day)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ActivityListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Activity, 0, len(activities))
	for _, activity := range activities {
		data = append(data, newActivity(c, activity))
	}

	c.JSON(http.StatusOK, ActivityListResponse{Data: data})
}

// @Summary		Get activity
// @Description	Returns a specific activity
// @Tags			Activities
// @Produce		json
// @Success		200	{object}	ActivityResponse
// @Failure		400	{object}	ActivityResponse
// @Failure		404	{object}	ActivityResponse
// @Failure		500	{object}	ActivityResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/activities/{id} [get]
func GetActivity(c *gin.Context) {
	activity, _, err := getActivity(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ActivityResponse{
			Error: &s,
		})
		return
	}

	data := newActivity(c, activity)
	c.JSON(http.StatusOK, ActivityResponse{Data: &data})
}

// @Summary		Update activity
// @Description	Update an existing activity. Only values to be updated need to be specified. Only the creator of the activity and the owner of the trip can update it.
// @Tags			Activities
// @Accept			json
// @Produce		json
// @Success		200			{object}	ActivityResponse
// @Failure		400			{object}	ActivityResponse
// @Failure		403			{object}	ActivityResponse
// @Failure		404			{object}	ActivityResponse
// @Failure		500			{object}	ActivityResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			activity	body		ActivityEditable	true	"Activity"
// @Router			/v1/activities/{id} [patch]
func UpdateActivity(c *gin.Context) {
	activity, access, err := getActivity(c)
	if err == nil {
		err = access.RequireCreatorOrOwner(activity.UserID)
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), ActivityResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.BodyFields(c, ActivityEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ActivityResponse{
			Error: &s,
		})
		return
	}

	var data ActivityEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ActivityResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&activity).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ActivityResponse{
			Error: &s,
		})
		return
	}

	r := newActivity(c, activity)
	c.JSON(http.StatusOK, ActivityResponse{Data: &r})
}

// @Summary		Delete activity
// @Description	Deletes an activity. Only the creator of the activity and the owner of the trip can delete it.
// @Tags			Activities
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/activities/{id} [delete]
func DeleteActivity(c *gin.Context) {
	activity, access, err := getActivity(c)
	if err == nil {
		err = access.RequireCreatorOrOwner(activity.UserID)
	}

	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Unscoped().Delete(&activity).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Get reminders
// @Description	Returns the reminders that are due for the activities of a trip
// @Tags			Activities
// @Produce		json
// @Success		200	{object}	ReminderListResponse
// @Failure		400	{object}	ReminderListResponse
// @Failure		404	{object}	ReminderListResponse
// @Failure		500	{object}	ReminderListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			now	query		string	false	"Time to compute the reminders for in RFC 3339 format. The day and time of activities are interpreted in its timezone. Defaults to the current time"
// @Router			/v1/trips/{id}/reminders [get]
func (co Controller) GetTripReminders(c *gin.Context) {
	access, err := accessTrip(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderListResponse{
			Error: &s,
		})
		return
	}

	now, err := httputil.QueryTime(c, "now", co.now())
	if err != nil {
		s := errNowInvalid.Error()
		c.JSON(http.StatusBadRequest, ReminderListResponse{
			Error: &s,
		})
		return
	}

	activities, err := access.Trip.Activities(models.DB, 0)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ReminderListResponse{
		Data: access.Trip.Reminders(activities, now),
	})
}
