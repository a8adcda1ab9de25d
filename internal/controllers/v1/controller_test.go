package v1_test

import (
	"net/http"

	v1 "github.com/tripbudget/backend/internal/controllers/v1"
	"github.com/tripbudget/backend/test"
)

func (suite *TestSuiteStandard) TestGet() {
	r := suite.request("", http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("http://example.com/v1/currencies", response.Links.Currencies)
	suite.Assert().Equal("http://example.com/v1/rates/USD", response.Links.Rates)
	suite.Assert().Equal("http://example.com/v1/users/me", response.Links.Me)
	suite.Assert().Equal("http://example.com/v1/trips", response.Links.Trips)
}

func (suite *TestSuiteStandard) TestOptions() {
	for _, url := range []string{
		"http://example.com/v1",
		"http://example.com/v1/currencies",
		"http://example.com/v1/rates/EUR",
		"http://example.com/v1/convert",
		"http://example.com/v1/categories",
	} {
		r := suite.request("", http.MethodOptions, url, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"), url)
	}
}
