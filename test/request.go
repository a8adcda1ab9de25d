package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripbudget/backend/internal/rates"
	"github.com/tripbudget/backend/internal/router"
)

// Request sends a request through the full router, including all
// middlewares and the exchange rate source configured in the environment.
//
// body can be a string, a *bytes.Buffer or anything that marshals to JSON.
func Request(t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	r, teardown := engine(t)
	defer teardown()

	req, err := http.NewRequest(method, reqURL, encode(t, body))
	require.Nil(t, err, "request could not be created")

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	return *recorder
}

// engine builds the router with the API_URL from the environment.
func engine(t *testing.T) (*gin.Engine, func()) {
	apiURL, ok := os.LookupEnv("API_URL")
	require.True(t, ok, "environment variable API_URL must be set")

	baseURL, err := url.Parse(apiURL)
	require.Nil(t, err, "environment variable API_URL must be a valid URL")

	r, teardownRouter, err := router.Config(baseURL)
	if err != nil {
		teardownRouter()
		require.FailNow(t, "router could not be initialized", err)
	}

	cfg, err := rates.ConfigFromEnv()
	if err != nil {
		teardownRouter()
		require.FailNow(t, "exchange rate configuration is invalid", err)
	}

	source, closeSource, err := rates.New(cfg)
	if err != nil {
		teardownRouter()
		require.FailNow(t, "exchange rate source could not be initialized", err)
	}

	router.AttachRoutes(r.Group("/"), source)

	return r, func() {
		closeSource()
		teardownRouter()
	}
}

func encode(t *testing.T, body any) io.Reader {
	switch b := body.(type) {
	case nil:
		return http.NoBody
	case string:
		return bytes.NewBufferString(b)
	case *bytes.Buffer:
		return b
	}

	data, err := json.Marshal(body)
	require.Nil(t, err, "request body could not be marshalled")

	return bytes.NewBuffer(data)
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), &target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// AssertHTTPStatus verifies that the HTTP response status is correct
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
