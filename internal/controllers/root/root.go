package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripbudget/backend/internal/currency"
	"github.com/tripbudget/backend/internal/httputil"
	"github.com/tripbudget/backend/internal/models"
)

type Response struct {
	Data  Info  `json:"data"`
	Links Links `json:"links"`
}

// Info describes the service.
type Info struct {
	Name            string   `json:"name" example:"Trip Budget"`
	DefaultCurrency string   `json:"defaultCurrency" example:"USD"`    // Base currency used when none is given
	Currencies      []string `json:"currencies" example:"USD,EUR,JPY"` // Currencies trips and expenses can use
}

type Links struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"` // Swagger API documentation
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`      // Healthz endpoint
	Version string `json:"version" example:"https://example.com/api/version"`      // Endpoint returning the version of the backend
	Metrics string `json:"metrics" example:"https://example.com/api/metrics"`      // Endpoint returning Prometheus metrics
	V1      string `json:"v1" example:"https://example.com/api/v1"`                // List endpoint for all v1 endpoints
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Data: Info{
			Name:            "Trip Budget",
			DefaultCurrency: currency.Default,
			Currencies:      currency.Codes(),
		},
		Links: Links{
			Docs:    url + "/docs/index.html",
			Healthz: url + "/healthz",
			Version: url + "/version",
			Metrics: url + "/metrics",
			V1:      url + "/v1",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.Options(c, http.MethodGet)
}
