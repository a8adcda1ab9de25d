package v1

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tripbudget/backend/internal/models"
)

// UserEditable represents all user configurable parameters
type UserEditable struct {
	Name     string `json:"name" example:"Kenji Sato" default:""`                         // Name shown to other users
	Email    string `json:"email" example:"kenji@example.com" default:""`                 // Email address
	ImageURL string `json:"imageUrl" example:"https://example.com/avatar.png" default:""` // URL of the profile picture
}

// model returns the database resource for the editable fields
func (editable UserEditable) model() models.User {
	return models.User{
		Name:     strings.TrimSpace(editable.Name),
		Email:    strings.TrimSpace(editable.Email),
		ImageURL: strings.TrimSpace(editable.ImageURL),
	}
}

type UserLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/users/me"` // The user itself
}

// User is the API v1 representation of a User.
type User struct {
	models.DefaultModel
	UserEditable
	Links *UserLinks `json:"links,omitempty"` // Only set for the authenticated user
}

func newUser(model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		UserEditable: UserEditable{
			Name:     model.Name,
			Email:    model.Email,
			ImageURL: model.ImageURL,
		},
	}
}

func newMe(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.DBContextURL))

	u := newUser(model)
	u.Links = &UserLinks{
		Self: fmt.Sprintf("%s/v1/users/me", url),
	}
	return u
}

type UserResponse struct {
	Data  *User   `json:"data"`                                                          // Data for the user
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type UserListResponse struct {
	Data  []User  `json:"data"`                                                                // List of users
	Error *string `json:"error" example:"the search query must be at least 2 characters long"` // The error, if any occurred
}

type UserQueryFilter struct {
	Search string `form:"search"` // By string in name or email
}
