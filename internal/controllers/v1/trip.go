package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripbudget/backend/internal/httputil"
	"github.com/tripbudget/backend/internal/models"
)

// RegisterTripRoutes registers the routes for trips and all resources
// nested below a trip with the RouterGroup that is passed.
func (co Controller) RegisterTripRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTripList)
		r.GET("", co.GetTrips)
		r.POST("", co.CreateTrips)
	}

	// Trip with ID
	{
		r.OPTIONS("/:id", OptionsTripDetail)
		r.GET("/:id", co.GetTrip)
		r.PATCH("/:id", co.UpdateTrip)
		r.DELETE("/:id", DeleteTrip)
	}

	// Computed data
	{
		r.OPTIONS("/:id/budget", OptionsTripComputed)
		r.GET("/:id/budget", co.GetTripBudget)
		r.OPTIONS("/:id/reminders", OptionsTripComputed)
		r.GET("/:id/reminders", co.GetTripReminders)
	}

	// Resources of the trip
	{
		r.OPTIONS("/:id/expenses", OptionsTripCollection)
		r.GET("/:id/expenses", GetExpenses)
		r.POST("/:id/expenses", CreateExpenses)

		r.OPTIONS("/:id/contributors", OptionsTripCollection)
		r.GET("/:id/contributors", GetContributors)
		r.POST("/:id/contributors", CreateContributors)

		r.OPTIONS("/:id/custom-categories", OptionsTripCollection)
		r.GET("/:id/custom-categories", GetCustomCategories)
		r.POST("/:id/custom-categories", CreateCustomCategories)

		r.OPTIONS("/:id/category-rules", OptionsTripCollection)
		r.GET("/:id/category-rules", GetCategoryRules)
		r.POST("/:id/category-rules", CreateCategoryRules)

		r.OPTIONS("/:id/activities", OptionsTripCollection)
		r.GET("/:id/activities", GetActivities)
		r.POST("/:id/activities", CreateActivities)

		r.OPTIONS("/:id/participants", OptionsTripCollection)
		r.GET("/:id/participants", GetParticipants)
		r.POST("/:id/participants", InviteParticipant)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Trips
// @Success		204
// @Router			/v1/trips [options]
func OptionsTripList(c *gin.Context) {
	httputil.Options(c, http.MethodGet, http.MethodPost)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Trips
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/trips/{id} [options]
func OptionsTripDetail(c *gin.Context) {
	_, err := accessTrip(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.Options(c, http.MethodGet, http.MethodPatch, http.MethodDelete)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Trips
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/trips/{id}/budget [options]
// @Router			/v1/trips/{id}/reminders [options]
func OptionsTripComputed(c *gin.Context) {
	_, err := accessTrip(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.Options(c, http.MethodGet)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Trips
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/trips/{id}/expenses [options]
// @Router			/v1/trips/{id}/contributors [options]
// @Router			/v1/trips/{id}/custom-categories [options]
// @Router			/v1/trips/{id}/category-rules [options]
// @Router			/v1/trips/{id}/activities [options]
// @Router			/v1/trips/{id}/participants [options]
func OptionsTripCollection(c *gin.Context) {
	_, err := accessTrip(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.Options(c, http.MethodGet, http.MethodPost)
}

// @Summary		Create trips
// @Description	Creates new trips. The authenticated user becomes the owner of the trips.
// @Tags			Trips
// @Produce		json
// @Success		201		{object}	TripCreateResponse
// @Failure		400		{object}	TripCreateResponse
// @Failure		500		{object}	TripCreateResponse
// @Param			trips	body		[]TripEditable	true	"Trips"
// @Router			/v1/trips [post]
func (co Controller) CreateTrips(c *gin.Context) {
	var editables []TripEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TripCreateResponse{
			Error: &e,
		})
		return
	}

	user := currentUser(c)

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TripCreateResponse{}

	for _, editable := range editables {
		trip := editable.model()
		trip.OwnerID = user.ID

		err = models.CreateTrip(models.DB, &trip)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newTrip(c, models.TripAccess{Trip: trip, UserID: user.ID, Role: models.RoleOwner}, co.now())
		r.Data = append(r.Data, TripResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get trips
// @Description	Returns the trips the user owns or participates in, newest first
// @Tags			Trips
// @Produce		json
// @Success		200	{object}	TripListResponse
// @Failure		500	{object}	TripListResponse
// @Router			/v1/trips [get]
func (co Controller) GetTrips(c *gin.Context) {
	user := currentUser(c)

	trips, err := models.TripsForUser(models.DB, user.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TripListResponse{
			Error: &s,
		})
		return
	}

	now := co.now()
	data := make([]Trip, 0, len(trips))
	for _, trip := range trips {
		role := models.RoleMember
		if trip.OwnerID == user.ID {
			role = models.RoleOwner
		}

		data = append(data, newTrip(c, models.TripAccess{Trip: trip, UserID: user.ID, Role: role}, now))
	}

	c.JSON(http.StatusOK, TripListResponse{Data: data})
}

// @Summary		Get trip
// @Description	Returns a specific trip
// @Tags			Trips
// @Produce		json
// @Success		200	{object}	TripResponse
// @Failure		400	{object}	TripResponse
// @Failure		404	{object}	TripResponse
// @Failure		500	{object}	TripResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/trips/{id} [get]
func (co Controller) GetTrip(c *gin.Context) {
	access, err := accessTrip(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TripResponse{
			Error: &s,
		})
		return
	}

	data := newTrip(c, access, co.now())
	c.JSON(http.StatusOK, TripResponse{Data: &data})
}

// @Summary		Update trip
// @Description	Update an existing trip. Only values to be updated need to be specified. Only the owner can update a trip.
// @Tags			Trips
// @Accept			json
// @Produce		json
// @Success		200		{object}	TripResponse
// @Failure		400		{object}	TripResponse
// @Failure		403		{object}	TripResponse
// @Failure		404		{object}	TripResponse
// @Failure		500		{object}	TripResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			trip	body		TripEditable	true	"Trip"
// @Router			/v1/trips/{id} [patch]
func (co Controller) UpdateTrip(c *gin.Context) {
	access, err := accessTrip(c)
	if err == nil {
		err = access.RequireOwner()
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), TripResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.BodyFields(c, TripEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TripResponse{
			Error: &s,
		})
		return
	}

	var data TripEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TripResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&access.Trip).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TripResponse{
			Error: &s,
		})
		return
	}

	r := newTrip(c, access, co.now())
	c.JSON(http.StatusOK, TripResponse{Data: &r})
}

// @Summary		Delete trip
// @Description	Deletes a trip. Only the owner can delete a trip.
// @Tags			Trips
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/trips/{id} [delete]
func DeleteTrip(c *gin.Context) {
	access, err := accessTrip(c)
	if err == nil {
		err = access.RequireOwner()
	}

	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&access.Trip).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
