package v1

import (
	"errors"
	"net/http"

	"github.com/tripbudget/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no trip matching your query"`
}

// status returns the appropriate status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrUnauthenticated):
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

var (
	errAmountInvalid     = errors.New("the amount parameter must be a decimal number")
	errConvertParameters = errors.New("the amount, from and to parameters must be set")
	errDayInvalid        = errors.New("the day parameter must be a positive number")
	errNowInvalid        = errors.New("the now parameter must be a RFC 3339 timestamp")
	errTopInvalid        = errors.New("the top parameter must be a positive number")
	errUserIDMissing     = errors.New("the userId must be set")
)
