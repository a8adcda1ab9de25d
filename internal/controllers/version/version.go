package version

import (
	"net/http"
	"runtime"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/tripbudget/backend/internal/httputil"
)

type Response struct {
	Data Object `json:"data"` // Data object for the version endpoint
}

type Object struct {
	Version   string `json:"version" example:"1.1.0"`                                               // Running version of the Trip Budget backend
	Revision  string `json:"revision,omitempty" example:"4f1c2b9e0d7a3c5b8e6f1a2d9c0b7e3f4a5d6c8b"` // VCS revision the backend was built from
	GoVersion string `json:"goVersion" example:"go1.25.5"`                                          // Go version used to build the backend
}

// build is filled once when the routes are registered.
var build Object

func RegisterRoutes(r *gin.RouterGroup, version string) {
	build = Object{
		Version:   version,
		Revision:  revision(),
		GoVersion: runtime.Version(),
	}

	r.GET("", Get)
	r.OPTIONS("", Options)
}

// revision returns the VCS revision embedded by the Go toolchain, if any.
func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}

	return ""
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.Options(c, http.MethodGet)
}

// @Summary		API version
// @Description	Returns the software version of the API and how it was built
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Data: build})
}
