package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tripbudget/backend/internal/httputil"
	"github.com/tripbudget/backend/internal/models"
)

// ContributorEditable represents all user configurable parameters
type ContributorEditable struct {
	Name   string          `json:"name" example:"Grandma" default:""`                                                                    // Name of the contributor
	Amount decimal.Decimal `json:"amount" example:"500" default:"0" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Contributed amount in the base currency of the trip
}

// Contributor is the API v1 representation of a Contributor.
type Contributor struct {
	models.DefaultModel
	ContributorEditable
	TripID uuid.UUID         `json:"tripId" example:"4ab2b2e5-6a1d-4b1e-b1f0-46e4f3c37a3d"` // ID of the trip
	Links  TripResourceLinks `json:"links"`
}

func newContributor(c *gin.Context, model models.Contributor) Contributor {
	url := c.GetString(string(models.DBContextURL))

	return Contributor{
		DefaultModel: model.DefaultModel,
		ContributorEditable: ContributorEditable{
			Name:   model.Name,
			Amount: model.Amount,
		},
		TripID: model.TripID,
		Links: TripResourceLinks{
			Self: fmt.Sprintf("%s/v1/contributors/%s", url, model.ID),
			Trip: fmt.Sprintf("%s/v1/trips/%s", url, model.TripID),
		},
	}
}

type ContributorListResponse struct {
	Data  []Contributor `json:"data"`                                                          // List of contributors
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ContributorCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ContributorResponse `json:"data"`                                                          // List of created Contributors
}

func (r *ContributorCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ContributorResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ContributorResponse struct {
	Data  *Contributor `json:"data"`                                                          // Data for the contributor
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this contributor
}

// RegisterContributorRoutes registers the routes for contributors with
// the RouterGroup that is passed.
func RegisterContributorRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id", OptionsContributorDetail)
	r.DELETE("/:id", DeleteContributor)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Contributors
// @Success		204
// @Router			/v1/contributors/{id} [options]
func OptionsContributorDetail(c *gin.Context) {
	httputil.Options(c, http.MethodDelete)
}

// @Summary		Create contributors
// @Description	Adds contributors to the budget of a trip. Only the owner of the trip can add contributors.
// @Tags			Contributors
// @Produce		json
// @Success		201				{object}	ContributorCreateResponse
// @Failure		400				{object}	ContributorCreateResponse
// @Failure		403				{object}	ContributorCreateResponse
// @Failure		404				{object}	ContributorCreateResponse
// @Failure		500				{object}	ContributorCreateResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			contributors	body		[]ContributorEditable	true	"Contributors"
// @Router			/v1/trips/{id}/contributors [post]
func CreateContributors(c *gin.Context) {
	access, err := accessTrip(c)
	if err == nil {
		err = access.RequireOwner()
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContributorCreateResponse{
			Error: &e,
		})
		return
	}

	var editables []ContributorEditable

	// Bind data and return error if not possible
	err = httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContributorCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ContributorCreateResponse{}

	for _, editable := range editables {
		contributor := models.Contributor{
			TripID: access.Trip.ID,
			UserID: access.UserID,
			Name:   editable.Name,
			Amount: editable.Amount,
		}

		err = models.DB.Create(&contributor).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newContributor(c, contributor)
		r.Data = append(r.Data, ContributorResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get contributors
// @Description	Returns the contributors to the budget of a trip
// @Tags			Contributors
// @Produce		json
// @Success		200	{object}	ContributorListResponse
// @Failure		400	{object}	ContributorListResponse
// @Failure		404	{object}	ContributorListResponse
// @Failure		500	{object}	ContributorListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/trips/{id}/contributors [get]
func GetContributors(c *gin.Context) {
	access, err := accessTrip(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributorListResponse{
			Error: &s,
		})
		return
	}

	contributors, err := access.Trip.Contributors(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributorListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Contributor, 0, len(contributors))
	for _, contributor := range contributors {
		data = append(data, newContributor(c, contributor))
	}

	c.JSON(http.StatusOK, ContributorListResponse{Data: data})
}

// @Summary		Delete contributor
// @Description	Deletes a contributor. Only the owner of the trip can delete contributors.
// @Tags			Contributors
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/contributors/{id} [delete]
func DeleteContributor(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var contributor models.Contributor
	err = models.DB.First(&contributor, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	access, err := models.AccessTrip(models.DB, contributor.TripID, currentUser(c).ID)
	if err == nil {
		err = access.RequireOwner()
	}

	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Unscoped().Delete(&contributor).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
