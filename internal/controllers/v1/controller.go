// Package v1 implements the v1 API of the backend.
package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tripbudget/backend/internal/httputil"
	"github.com/tripbudget/backend/internal/models"
	"github.com/tripbudget/backend/internal/rates"
)

// Controller holds the dependencies of the v1 handlers.
type Controller struct {
	Rates *rates.Source
	Now   func() time.Time // Defaults to time.Now
}

func (co Controller) now() time.Time {
	if co.Now == nil {
		return time.Now()
	}
	return co.Now()
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
//
// Currencies, rates and categories are public, all other routes require
// an authenticated user.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)

	co.RegisterCurrencyRoutes(r)

	authenticated := r.Group("", Authenticate)
	RegisterUserRoutes(authenticated.Group("/users"))
	co.RegisterTripRoutes(authenticated.Group("/trips"))
	RegisterExpenseRoutes(authenticated.Group("/expenses"))
	RegisterContributorRoutes(authenticated.Group("/contributors"))
	RegisterCustomCategoryRoutes(authenticated.Group("/custom-categories"))
	RegisterActivityRoutes(authenticated.Group("/activities"))
	RegisterParticipantRoutes(authenticated.Group("/participants"))
	RegisterCategoryRuleRoutes(authenticated.Group("/category-rules"))
	RegisterFriendshipRoutes(authenticated.Group("/friendships"))
	RegisterFriendRoutes(authenticated.Group("/friends"))
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Currencies  string `json:"currencies" example:"https://example.com/api/v1/currencies"`   // URL of the supported currencies
	Rates       string `json:"rates" example:"https://example.com/api/v1/rates/USD"`         // URL of the exchange rate table for USD
	Convert     string `json:"convert" example:"https://example.com/api/v1/convert"`         // URL of the conversion endpoint
	Categories  string `json:"categories" example:"https://example.com/api/v1/categories"`   // URL of the predefined expense categories
	Me          string `json:"me" example:"https://example.com/api/v1/users/me"`             // URL of the authenticated user
	Trips       string `json:"trips" example:"https://example.com/api/v1/trips"`             // URL of Trip collection endpoint
	Friendships string `json:"friendships" example:"https://example.com/api/v1/friendships"` // URL of Friendship collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Currencies:  url + "/v1/currencies",
			Rates:       url + "/v1/rates/USD",
			Convert:     url + "/v1/convert",
			Categories:  url + "/v1/categories",
			Me:          url + "/v1/users/me",
			Trips:       url + "/v1/trips",
			Friendships: url + "/v1/friendships",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.Options(c, http.MethodGet)
}
