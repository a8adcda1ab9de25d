package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
)

// RateServer starts an exchange rate provider serving the tables passed in.
// Requests for bases without a table are answered with 404.
//
// The server must be closed by the caller.
func RateServer(tables map[string]map[string]float64) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		base := strings.TrimPrefix(r.URL.Path, "/")

		table, ok := tables[base]
		if !ok {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"base":  base,
			"rates": table,
		})
	}))
}
