package v1

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tripbudget/backend/internal/models"
)

// Headers set by the identity proxy in front of the backend.
const (
	HeaderUserID    = "X-User-ID"
	HeaderUserEmail = "X-User-Email"
	HeaderUserName  = "X-User-Name"
	HeaderUserImage = "X-User-Image"
)

const contextUser = "tb-user"

// Authenticate makes sure the request carries a user identity and stores
// the user in the context. Users are created on their first request.
func Authenticate(c *gin.Context) {
	subject := strings.TrimSpace(c.GetHeader(HeaderUserID))
	if subject == "" {
		c.AbortWithStatusJSON(status(models.ErrUnauthenticated), httpError{
			Error: models.ErrUnauthenticated.Error(),
		})
		return
	}

	user, err := models.EnsureUser(models.DB, models.Identity{
		Subject:  subject,
		Email:    c.GetHeader(HeaderUserEmail),
		Name:     c.GetHeader(HeaderUserName),
		ImageURL: c.GetHeader(HeaderUserImage),
	})
	if err != nil {
		c.AbortWithStatusJSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Set(contextUser, user)
	c.Next()
}

// currentUser returns the user stored by Authenticate.
func currentUser(c *gin.Context) models.User {
	return c.MustGet(contextUser).(models.User)
}

// accessTrip binds the trip ID from the URI and returns the trip if the
// current user can read it.
func accessTrip(c *gin.Context) (models.TripAccess, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.TripAccess{}, err
	}

	return models.AccessTrip(models.DB, uri.ID.UUID, currentUser(c).ID)
}
