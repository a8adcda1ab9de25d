package v1_test

import (
	"net/http"

	v1 "github.com/tripbudget/backend/internal/controllers/v1"
	"github.com/tripbudget/backend/test"
)

func (suite *TestSuiteStandard) TestCustomCategories() {
	trip := suite.createTestTrip("kenji", map[string]any{})
	suite.invite("kenji", "mara", trip, true)

	// Every participant can create custom categories
	r := suite.request("mara", http.MethodPost, trip.Links.CustomCategories, []map[string]any{{"name": " Visa Fees "}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var created v1.CustomCategoryCreateResponse
	test.DecodeResponse(suite.T(), &r, &created)
	category := created.Data[0].Data
	suite.Assert().Equal("visa fees", category.Name)
	suite.Assert().Equal("Visa Fees", category.Label)
	suite.Assert().Equal("Transaction Date", category.DateLabel)

	// Names are unique per trip
	r = suite.request("kenji", http.MethodPost, trip.Links.CustomCategories, []map[string]any{{"name": "VISA FEES"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Expenses in the category get its label
	expense := suite.createTestExpense("kenji", trip, map[string]any{"category": "Visa Fees"})
	suite.Assert().Equal("visa fees", expense.Category)
	suite.Assert().Equal("Visa Fees", expense.CategoryLabel)

	r = suite.request("kenji", http.MethodGet, trip.Links.CustomCategories, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CustomCategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)

	// The owner can delete categories of other participants
	r = suite.request("kenji", http.MethodDelete, category.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestDeleteCustomCategoryForbidden() {
	trip := suite.createTestTrip("kenji", map[string]any{})
	suite.invite("kenji", "mara", trip, true)

	r := suite.request("kenji", http.MethodPost, trip.Links.CustomCategories, []map[string]any{{"name": "Visa"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var created v1.CustomCategoryCreateResponse
	test.DecodeResponse(suite.T(), &r, &created)

	r = suite.request("mara", http.MethodDelete, created.Data[0].Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = suite.request("keiko", http.MethodDelete, created.Data[0].Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
