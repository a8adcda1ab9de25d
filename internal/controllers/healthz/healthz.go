package healthz

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/tripbudget/backend/internal/httputil"
	"github.com/tripbudget/backend/internal/models"
)

// pingTimeout bounds the database check so that a hanging database
// does not block the health endpoint.
const pingTimeout = 2 * time.Second

type Response struct {
	Data  *Health `json:"data,omitempty"`                                          // Health of the backend
	Error string  `json:"error,omitempty" example:"the database is not reachable"` // Error, if the backend is not healthy
}

type Health struct {
	Database string        `json:"database" example:"ok"`                           // Status of the database
	Latency  time.Duration `json:"latency" swaggertype:"integer" example:"1200000"` // Database round trip in nanoseconds
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.Options(c, http.MethodGet)
}

// @Summary		Get health
// @Description	Pings the database and returns the result. Exchange rate providers are not checked as fallback rates are always available
// @Tags			General
// @Produce		json
// @Success		200	{object}	Response
// @Failure		503	{object}	Response
// @Router			/healthz [get]
func Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	start := time.Now()
	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}

	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("health check failed")
		c.JSON(http.StatusServiceUnavailable, Response{
			Error: errDatabaseUnreachable.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Data: &Health{
			Database: "ok",
			Latency:  time.Since(start),
		},
	})
}
