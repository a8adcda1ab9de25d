package v1_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	v1 "github.com/tripbudget/backend/internal/controllers/v1"
	"github.com/tripbudget/backend/test"
)

func (suite *TestSuiteStandard) TestGetCurrencies() {
	r := suite.request("", http.MethodGet, "http://example.com/v1/currencies", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CurrencyListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 12)
	suite.Assert().Equal("USD", response.Data[0].Code)
	suite.Assert().Equal("$", response.Data[0].Symbol)
}

func (suite *TestSuiteStandard) TestGetCategories() {
	r := suite.request("", http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 8)
	suite.Assert().Equal("hotel", response.Data[1].Value)
	suite.Assert().Equal("Check-in Date", response.Data[1].DateLabel)
}

func (suite *TestSuiteStandard) TestGetRates() {
	r := suite.request("", http.MethodGet, "http://example.com/v1/rates/eur", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RatesResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("EUR", response.Data.Base)
	suite.Assert().False(response.Data.Fallback)
	suite.Assert().True(decimal.NewFromInt(200).Equal(response.Data.Rates["JPY"]))
}

func (suite *TestSuiteStandard) TestGetRatesFallback() {
	// The rate server does not know GBP
	r := suite.request("", http.MethodGet, "http://example.com/v1/rates/GBP", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RatesResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// There is no built-in GBP table, the USD table contains GBP
	suite.Assert().Equal("USD", response.Data.Base)
	suite.Assert().True(response.Data.Fallback)
	suite.Assert().True(response.Data.Rates.Has("GBP"))
}

func (suite *TestSuiteStandard) TestGetRatesInvalid() {
	tests := []string{"XYZ", "EURO", "12"}

	for _, base := range tests {
		suite.T().Run(base, func(t *testing.T) {
			r := suite.request("", http.MethodGet, "http://example.com/v1/rates/"+base, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestConvert() {
	tests := []struct {
		name      string
		query     string
		result    decimal.Decimal
		formatted string
		converted bool
	}{
		{"Same currency", "amount=25.5&from=USD&to=USD", decimal.NewFromFloat(25.5), "$25.50", true},
		{"Into the base", "amount=1000&from=jpy&to=usd", decimal.NewFromInt(10), "$10.00", true},
		{"Cross rate", "amount=10&from=JPY&to=EUR", decimal.NewFromFloat(0.05), "€0.05", true},
		{"Out of the base", "amount=10&from=USD&to=EUR", decimal.NewFromInt(5), "€5.00", true},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request("", http.MethodGet, "http://example.com/v1/convert?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ConversionResponse
			test.DecodeResponse(t, &r, &response)

			assert.True(t, tt.result.Equal(response.Data.Result), "expected %s, got %s", tt.result, response.Data.Result)
			assert.Equal(t, tt.formatted, response.Data.Formatted)
			assert.Equal(t, tt.converted, response.Data.Converted)
			assert.False(t, response.Data.Fallback)
		})
	}
}

func (suite *TestSuiteStandard) TestConvertErrors() {
	tests := []struct {
		name  string
		query string
		err   string
	}{
		{"Missing amount", "from=USD&to=EUR", "the amount, from and to parameters must be set"},
		{"Missing currency", "amount=10&from=USD", "the amount, from and to parameters must be set"},
		{"Invalid amount", "amount=ten&from=USD&to=EUR", "the amount parameter must be a decimal number"},
		{"Unsupported currency", "amount=10&from=SEK&to=EUR", "'SEK' is not a supported currency"},
		{"Malformed currency", "amount=10&from=USD&to=EURO", "'EURO' is not a valid ISO 4217 currency code"},
		{"Malformed query", "amount=%zz&from=USD&to=EUR", "the amount, from and to parameters must be set"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request("", http.MethodGet, "http://example.com/v1/convert?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.ConversionResponse
			test.DecodeResponse(t, &r, &response)
			assert.Contains(t, *response.Error, tt.err)
		})
	}
}
