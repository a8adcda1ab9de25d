package v1_test

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/tripbudget/backend/internal/budget"
	v1 "github.com/tripbudget/backend/internal/controllers/v1"
	"github.com/tripbudget/backend/test"
)

func (suite *TestSuiteStandard) assertAmount(expected int64, actual decimal.Decimal) {
	suite.Assert().True(decimal.NewFromInt(expected).Equal(actual), "expected %d, got %s", expected, actual)
}

func (suite *TestSuiteStandard) TestGetTripBudget() {
	trip := suite.createTestTrip("kenji", map[string]any{"baseCurrency": "USD", "allocatedBudget": "100"})

	suite.createTestExpense("kenji", trip, map[string]any{"name": "Ramen", "amount": "50", "currency": "USD", "category": "food"})
	suite.createTestExpense("kenji", trip, map[string]any{"name": "Ryokan", "amount": "1000", "currency": "JPY", "category": "hotel"})
	suite.createTestExpense("kenji", trip, map[string]any{"name": "Shinkansen", "amount": "20", "currency": "EUR", "category": "transport", "isPlanned": true})

	r := suite.request("kenji", http.MethodPost, trip.Links.Contributors, []map[string]any{
		{"name": "Grandma", "amount": "30"},
		{"name": "Savings", "amount": "45"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = suite.request("kenji", http.MethodGet, trip.Links.Budget, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	data := response.Data

	suite.assertAmount(60, data.Snapshot.TotalSpent)
	suite.assertAmount(40, data.Snapshot.TotalPlanned)
	suite.assertAmount(40, data.Snapshot.ActualRemaining)
	suite.assertAmount(0, data.Snapshot.ProjectedRemaining)
	suite.assertAmount(60, data.Snapshot.PercentageSpent)
	suite.Assert().Empty(data.Snapshot.Unconverted)
	suite.assertAmount(75, data.Contributed)

	suite.Require().Len(data.Categories, 3)
	suite.Assert().Equal("food", data.Categories[0].Category)
	suite.Assert().Equal("Food & Dining", data.Categories[0].Label)
	suite.Assert().Equal("hotel", data.Categories[1].Category)
	suite.assertAmount(10, data.Categories[1].Spent)
	suite.Assert().Equal("transport", data.Categories[2].Category)
	suite.assertAmount(40, data.Categories[2].Planned)

	suite.Require().Len(data.Breakdown, 2, "planned expenses are not contained in the breakdown")
	suite.assertAmount(50, data.Breakdown["Food & Dining"])
	suite.assertAmount(10, data.Breakdown["Hotel"])

	suite.Require().Len(data.Alerts, 2)
	suite.Assert().Equal(50, data.Alerts[0].Threshold)
	suite.Assert().Equal(budget.SeverityInfo, data.Alerts[0].Severity)
	suite.Assert().True(data.Alerts[1].Projected)

	suite.Assert().Equal("USD", data.Rates.Base)
	suite.Assert().False(data.Rates.Fallback)
	suite.Assert().Nil(data.Status)
}

func (suite *TestSuiteStandard) TestGetTripBudgetTop() {
	trip := suite.createTestTrip("kenji", map[string]any{})

	suite.createTestExpense("kenji", trip, map[string]any{"amount": "5", "category": "food"})
	suite.createTestExpense("kenji", trip, map[string]any{"amount": "50", "category": "hotel"})
	suite.createTestExpense("kenji", trip, map[string]any{"amount": "15", "category": "shopping"})

	r := suite.request("kenji", http.MethodGet, trip.Links.Budget+"?top=2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data.Categories, 2)
	suite.Assert().Equal("hotel", response.Data.Categories[0].Category)
	suite.Assert().Equal("shopping", response.Data.Categories[1].Category)

	// The totals still contain all expenses
	suite.assertAmount(70, response.Data.Snapshot.TotalSpent)
}

func (suite *TestSuiteStandard) TestGetTripBudgetFallbackRates() {
	// The rate server does not serve GBP tables
	trip := suite.createTestTrip("kenji", map[string]any{"baseCurrency": "GBP", "allocatedBudget": "0"})
	suite.createTestExpense("kenji", trip, map[string]any{"amount": "10", "currency": "GBP"})

	r := suite.request("kenji", http.MethodGet, trip.Links.Budget, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().True(response.Data.Rates.Fallback)
	suite.assertAmount(10, response.Data.Snapshot.TotalSpent)
	suite.assertAmount(0, response.Data.Snapshot.PercentageSpent)
	suite.Assert().Empty(response.Data.Alerts, "Alerts returned without allocated budget")
}

func (suite *TestSuiteStandard) TestGetTripBudgetErrors() {
	trip := suite.createTestTrip("kenji", map[string]any{})

	r := suite.request("kenji", http.MethodGet, trip.Links.Budget+"?top=-1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request("kenji", http.MethodGet, trip.Links.Budget+"?top=many", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request("mara", http.MethodGet, trip.Links.Budget, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
