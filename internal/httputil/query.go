package httputil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"
	"reflect"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// QueryFields returns the names of the fields of filter whose "form"
// parameter is present in the query of url. The result can be passed to
// a gorm Where call to filter on exactly these fields, zero values included.
//
// Fields tagged with filterField:"false" are skipped, they need explicit
// handling by the caller.
func QueryFields(url *url.URL, filter any) []any {
	query := url.Query()

	var fields []any
	t := reflect.Indirect(reflect.ValueOf(filter)).Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Tag.Get("filterField") == "false" {
			continue
		}

		if query.Has(f.Tag.Get("form")) {
			fields = append(fields, f.Name)
		}
	}

	return fields
}

// QueryTime parses the query parameter name as RFC 3339 timestamp.
// If the parameter is not set, fallback is returned.
func QueryTime(c *gin.Context, name string, fallback time.Time) (time.Time, error) {
	v := c.Query(name)
	if v == "" {
		return fallback, nil
	}

	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, ErrInvalidQueryString
	}

	return t, nil
}

// BodyFields returns the names of the fields of resource that are
// present in the JSON body, even if they are null. Use it for PATCH
// requests to only update what the client sent.
//
// The body is restored after reading, so this must be called before
// binding the body.
func BodyFields(c *gin.Context, resource any) ([]any, error) {
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	var present map[string]json.RawMessage
	if err := json.Unmarshal(body, &present); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return []any{}, ErrInvalidBody
	}

	var fields []any
	t := reflect.Indirect(reflect.ValueOf(resource)).Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if _, ok := present[f.Tag.Get("json")]; ok {
			fields = append(fields, f.Name)
		}
	}

	return fields, nil
}
