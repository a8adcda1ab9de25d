package v1_test

import (
	"net/http"

	v1 "github.com/tripbudget/backend/internal/controllers/v1"
	"github.com/tripbudget/backend/test"
)

func (suite *TestSuiteStandard) TestCategoryRules() {
	trip := suite.createTestTrip("kenji", map[string]any{})
	suite.invite("kenji", "mara", trip, true)

	r := suite.request("kenji", http.MethodPost, trip.Links.CategoryRules, []map[string]any{
		{"priority": 5, "match": "*", "category": "Other"},
		{"priority": 1, "match": "*hotel*", "category": "Hotel"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = suite.request("mara", http.MethodGet, trip.Links.CategoryRules, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryRuleListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Rules are returned in the order they are applied
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("*hotel*", response.Data[0].Match)
	suite.Assert().Equal("hotel", response.Data[0].Category)

	r = suite.request("mara", http.MethodPost, trip.Links.CategoryRules, []map[string]any{{"match": "*", "category": "food"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = suite.request("mara", http.MethodDelete, response.Data[0].Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = suite.request("kenji", http.MethodDelete, response.Data[0].Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestCreateCategoryRulesErrors() {
	trip := suite.createTestTrip("kenji", map[string]any{})

	r := suite.request("kenji", http.MethodPost, trip.Links.CategoryRules, []map[string]any{
		{"match": " ", "category": "food"},
		{"match": "*", "category": ""},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.CategoryRuleCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("the match of a category rule must not be empty", *response.Data[0].Error)
	suite.Assert().Equal("the category of a category rule must not be empty", *response.Data[1].Error)
}
