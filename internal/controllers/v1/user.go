package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripbudget/backend/internal/httputil"
	"github.com/tripbudget/backend/internal/models"
)

// userSearchLimit is the maximum number of users returned by a search
const userSearchLimit = 10

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func RegisterUserRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsUserList)
		r.GET("", GetUsers)
	}

	{
		r.OPTIONS("/me", OptionsMe)
		r.GET("/me", GetMe)
		r.PUT("/me", UpdateMe)
		r.DELETE("/me", DeleteMe)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users [options]
func OptionsUserList(c *gin.Context) {
	httputil.Options(c, http.MethodGet)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users/me [options]
func OptionsMe(c *gin.Context) {
	httputil.Options(c, http.MethodGet, http.MethodPut, http.MethodDelete)
}

// @Summary		Search users
// @Description	Searches users by name or email to send friend requests to. Users with an existing relation are not returned.
// @Tags			Users
// @Produce		json
// @Success		200		{object}	UserListResponse
// @Failure		400		{object}	UserListResponse
// @Failure		500		{object}	UserListResponse
// @Param			search	query		string	true	"At least 2 characters to search for in name and email"
// @Router			/v1/users [get]
func GetUsers(c *gin.Context) {
	var filter UserQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	users, err := models.SearchUsers(models.DB, currentUser(c).ID, filter.Search, userSearchLimit)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserListResponse{
			Error: &s,
		})
		return
	}

	data := make([]User, 0, len(users))
	for _, user := range users {
		data = append(data, newUser(user))
	}

	c.JSON(http.StatusOK, UserListResponse{Data: data})
}

// @Summary		Get the authenticated user
// @Description	Returns the user making the request. The user is created on the first request.
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	httpError
// @Router			/v1/users/me [get]
func GetMe(c *gin.Context) {
	data := newMe(c, currentUser(c))
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}

// @Summary		Update the authenticated user
// @Description	Updates the profile of the user making the request. Only values to be updated need to be specified.
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/users/me [put]
func UpdateMe(c *gin.Context) {
	user := currentUser(c)

	updateFields, err := httputil.BodyFields(c, UserEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	var data UserEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&user).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	r := newMe(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &r})
}

// @Summary		Delete the authenticated user
// @Description	Deletes the user making the request together with their friendships and participations. Trips owned by the user are deleted.
// @Tags			Users
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/v1/users/me [delete]
func DeleteMe(c *gin.Context) {
	err := models.DeleteUser(models.DB, currentUser(c))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
