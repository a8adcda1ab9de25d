package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tripbudget/backend/internal/budget"
	"github.com/tripbudget/backend/internal/httputil"
	"github.com/tripbudget/backend/internal/models"
)

// CustomCategoryEditable represents all user configurable parameters
type CustomCategoryEditable struct {
	Name string `json:"name" example:"visa fees" default:""` // Value of the category as stored on expenses
}

// CustomCategory is the API v1 representation of a CustomCategory.
type CustomCategory struct {
	models.DefaultModel
	CustomCategoryEditable
	budget.Category
	TripID uuid.UUID         `json:"tripId" example:"4ab2b2e5-6a1d-4b1e-b1f0-46e4f3c37a3d"` // ID of the trip
	UserID uuid.UUID         `json:"userId" example:"0b6f0b34-1b3f-4a5a-8c43-8f2b9d0a4a11"` // ID of the user that created the category
	Links  TripResourceLinks `json:"links"`
}

func newCustomCategory(c *gin.Context, model models.CustomCategory) CustomCategory {
	url := c.GetString(string(models.DBContextURL))

	return CustomCategory{
		DefaultModel: model.DefaultModel,
		CustomCategoryEditable: CustomCategoryEditable{
			Name: model.Name,
		},
		Category: budget.Lookup(model.Name),
		TripID:   model.TripID,
		UserID:   model.UserID,
		Links: TripResourceLinks{
			Self: fmt.Sprintf("%s/v1/custom-categories/%s", url, model.ID),
			Trip: fmt.Sprintf("%s/v1/trips/%s", url, model.TripID),
		},
	}
}

type CustomCategoryListResponse struct {
	Data  []CustomCategory `json:"data"`                                                          // List of custom categories
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CustomCategoryCreateResponse struct {
	Error *string                  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CustomCategoryResponse `json:"data"`                                                          // List of created custom categories
}

func (r *CustomCategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CustomCategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CustomCategoryResponse struct {
	Data  *CustomCategory `json:"data"`                                                          // Data for the custom category
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this custom category
}

// RegisterCustomCategoryRoutes registers the routes for custom categories
// with the RouterGroup that is passed.
func RegisterCustomCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id", OptionsCustomCategoryDetail)
	r.DELETE("/:id", DeleteCustomCategory)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Custom Categories
// @Success		204
// @Router			/v1/custom-categories/{id} [options]
func OptionsCustomCategoryDetail(c *gin.Context) {
	httputil.Options(c, http.MethodDelete)
}

// @Summary		Create custom categories
// @Description	Creates new expense categories for a trip
// @Tags			Custom Categories
// @Produce		json
// @Success		201			{object}	CustomCategoryCreateResponse
// @Failure		400			{object}	CustomCategoryCreateResponse
// @Failure		404			{object}	CustomCategoryCreateResponse
// @Failure		500			{object}	CustomCategoryCreateResponse
// @Param			id			path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			categories	body		[]CustomCategoryEditable	true	"Custom categories"
// @Router			/v1/trips/{id}/custom-categories [post]
func CreateCustomCategories(c *gin.Context) {
	access, err := accessTrip(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CustomCategoryCreateResponse{
			Error: &e,
		})
		return
	}

	var editables []CustomCategoryEditable

	// Bind data and return error if not possible
	err = httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CustomCategoryCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CustomCategoryCreateResponse{}

	for _, editable := range editables {
		category := models.CustomCategory{
			TripID: access.Trip.ID,
			UserID: access.UserID,
			Name:   editable.Name,
		}

		err = models.DB.Create(&category).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCustomCategory(c, category)
		r.Data = append(r.Data, CustomCategoryResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get custom categories
// @Description	Returns the custom expense categories of a trip
// @Tags			Custom Categories
// @Produce		json
// @Success		200	{object}	CustomCategoryListResponse
// @Failure		400	{object}	CustomCategoryListResponse
// @Failure		404	{object}	CustomCategoryListResponse
// @Failure		500	{object}	CustomCategoryListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/trips/{id}/custom-categories [get]
func GetCustomCategories(c *gin.Context) {
	access, err := accessTrip(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CustomCategoryListResponse{
			Error: &s,
		})
		return
	}

	categories, err := access.Trip.CustomCategories(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CustomCategoryListResponse{
			Error: &s,
		})
		return
	}

	data := make([]CustomCategory, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCustomCategory(c, category))
	}

	c.JSON(http.StatusOK, CustomCategoryListResponse{Data: data})
}

// @Summary		Delete custom category
// @Description	Deletes a custom category. Only the creator of the category and the owner of the trip can delete it.
// @Tags			Custom Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/custom-categories/{id} [delete]
func DeleteCustomCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var category models.CustomCategory
	err = models.DB.First(&category, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	access, err := models.AccessTrip(models.DB, category.TripID, currentUser(c).ID)
	if err == nil {
		err = access.RequireCreatorOrOwner(category.UserID)
	}

	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Unscoped().Delete(&category).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
