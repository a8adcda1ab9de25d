package v1_test

import (
	"net/http"

	v1 "github.com/tripbudget/backend/internal/controllers/v1"
	"github.com/tripbudget/backend/test"
)

func (suite *TestSuiteStandard) TestContributors() {
	trip := suite.createTestTrip("kenji", map[string]any{})
	suite.invite("kenji", "mara", trip, true)

	r := suite.request("kenji", http.MethodPost, trip.Links.Contributors, []map[string]any{
		{"name": " Grandma ", "amount": "500"},
		{"name": "Savings", "amount": "250.5"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var created v1.ContributorCreateResponse
	test.DecodeResponse(suite.T(), &r, &created)
	suite.Require().Len(created.Data, 2)
	suite.Assert().Equal("Grandma", created.Data[0].Data.Name)

	// Participants can read the contributors
	r = suite.request("mara", http.MethodGet, trip.Links.Contributors, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ContributorListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("250.5", response.Data[1].Amount.String())

	// Only the owner can change them
	r = suite.request("mara", http.MethodPost, trip.Links.Contributors, []map[string]any{{"name": "Me", "amount": "1"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = suite.request("mara", http.MethodDelete, created.Data[0].Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = suite.request("kenji", http.MethodDelete, created.Data[0].Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request("kenji", http.MethodGet, trip.Links.Contributors, "")
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 1)
}

func (suite *TestSuiteStandard) TestCreateContributorsErrors() {
	trip := suite.createTestTrip("kenji", map[string]any{})

	r := suite.request("kenji", http.MethodPost, trip.Links.Contributors, []map[string]any{
		{"name": "", "amount": "5"},
		{"name": "Refund", "amount": "-5"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ContributorCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("the name of a contributor must not be empty", *response.Data[0].Error)
	suite.Assert().Equal("the amount of a contributor must not be negative", *response.Data[1].Error)
}
