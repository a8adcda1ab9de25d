package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	v1 "github.com/tripbudget/backend/internal/controllers/v1"
	"github.com/tripbudget/backend/internal/models"
	"github.com/tripbudget/backend/test"
)

func (suite *TestSuiteStandard) TestTripsOptions() {
	trip := suite.createTestTrip("kenji", map[string]any{})

	tests := []struct {
		url   string
		allow string
	}{
		{"http://example.com/v1/trips", "OPTIONS, GET, POST"},
		{trip.Links.Self, "OPTIONS, GET, PATCH, DELETE"},
		{trip.Links.Budget, "OPTIONS, GET"},
		{trip.Links.Reminders, "OPTIONS, GET"},
		{trip.Links.Expenses, "OPTIONS, GET, POST"},
		{trip.Links.Participants, "OPTIONS, GET, POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.url, func(t *testing.T) {
			r := suite.request("kenji", http.MethodOptions, tt.url, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}

	r := suite.request("mara", http.MethodOptions, trip.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCreateTrips() {
	kenji := suite.me("kenji")

	trip := suite.createTestTrip("kenji", map[string]any{
		"title":           "  Trip to Japan ",
		"baseCurrency":    "jpy",
		"allocatedBudget": "250000",
	})

	suite.Assert().Equal("Trip to Japan", trip.Title)
	suite.Assert().Equal("JPY", trip.BaseCurrency)
	suite.Assert().True(decimal.NewFromInt(250000).Equal(trip.AllocatedBudget))
	suite.Assert().Equal(kenji.ID, trip.OwnerID)
	suite.Assert().Equal(models.RoleOwner, trip.Role)
	suite.Assert().Equal(0, trip.Days)
	suite.Assert().Nil(trip.Status)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/trips/%s/budget", trip.ID), trip.Links.Budget)

	// The owner is a participant of the trip
	r := suite.request("kenji", http.MethodGet, trip.Links.Participants, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var participants v1.ParticipantListResponse
	test.DecodeResponse(suite.T(), &r, &participants)
	suite.Require().Len(participants.Data, 1)
	suite.Assert().Equal(kenji.ID, participants.Data[0].UserID)
	suite.Assert().Equal(models.RoleOwner, participants.Data[0].Role)
	suite.Assert().Equal(models.StatusAccepted, participants.Data[0].Status)
}

func (suite *TestSuiteStandard) TestCreateTripsErrors() {
	start := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		trip map[string]any
		err  string
	}{
		{"No title", map[string]any{"title": " ", "baseCurrency": "EUR"}, "the title of a trip must not be empty"},
		{"No currency", map[string]any{"title": "Trip"}, "the base currency of a trip must be set"},
		{"Unsupported currency", map[string]any{"title": "Trip", "baseCurrency": "SEK"}, "'SEK' is not a supported currency"},
		{"Negative budget", map[string]any{"title": "Trip", "baseCurrency": "EUR", "allocatedBudget": "-1"}, "the allocated budget must not be negative"},
		{"End before start", map[string]any{"title": "Trip", "baseCurrency": "EUR", "startDate": start, "endDate": end}, "the end date of a trip must not be before its start date"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request("kenji", http.MethodPost, "http://example.com/v1/trips", []map[string]any{tt.trip})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.TripCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.Contains(t, *response.Data[0].Error, tt.err)
		})
	}

	r := suite.request("kenji", http.MethodGet, "http://example.com/v1/trips", "")
	var response v1.TripListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 0, "A trip has been created despite errors")
}

func (suite *TestSuiteStandard) TestCreateTripsPartialFailure() {
	r := suite.request("kenji", http.MethodPost, "http://example.com/v1/trips", []map[string]any{
		{"title": "Trip to Japan", "baseCurrency": "JPY"},
		{"title": "", "baseCurrency": "EUR"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.TripCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().NotNil(response.Data[0].Data)
	suite.Assert().Nil(response.Data[0].Error)
	suite.Assert().Nil(response.Data[1].Data)
	suite.Assert().NotNil(response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestCreateTripsBrokenBody() {
	r := suite.request("kenji", http.MethodPost, "http://example.com/v1/trips", `[{ "title": 2 }]`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetTrips() {
	first := suite.createTestTrip("kenji", map[string]any{"title": "Japan"})
	second := suite.createTestTrip("mara", map[string]any{"title": "Portugal"})
	suite.createTestTrip("mara", map[string]any{"title": "Iceland"})
	suite.invite("mara", "kenji", second, true)

	r := suite.request("kenji", http.MethodGet, "http://example.com/v1/trips", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TripListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)

	roles := map[uuid.UUID]models.Role{}
	for _, trip := range response.Data {
		roles[trip.ID] = trip.Role
	}

	suite.Assert().Equal(models.RoleOwner, roles[first.ID])
	suite.Assert().Equal(models.RoleMember, roles[second.ID])
}

func (suite *TestSuiteStandard) TestGetTripsPendingInvitation() {
	trip := suite.createTestTrip("mara", map[string]any{})
	suite.invite("mara", "kenji", trip, false)

	r := suite.request("kenji", http.MethodGet, "http://example.com/v1/trips", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TripListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 0)

	r = suite.request("kenji", http.MethodGet, trip.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetTrip() {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -2)
	end := now.AddDate(0, 0, 4)

	trip := suite.createTestTrip("kenji", map[string]any{
		"startDate": start,
		"endDate":   end,
	})

	r := suite.request("kenji", http.MethodGet, trip.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TripResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(trip.ID, response.Data.ID)
	suite.Assert().Equal(7, response.Data.Days)
	suite.Require().NotNil(response.Data.Status)
	suite.Assert().Equal(models.TripOngoing, response.Data.Status.Phase)
	suite.Assert().Equal(7, response.Data.Status.Days)
}

func (suite *TestSuiteStandard) TestGetTripErrors() {
	trip := suite.createTestTrip("kenji", map[string]any{})

	tests := []struct {
		name    string
		subject string
		url     string
		status  int
	}{
		{"Not a participant", "mara", trip.Links.Self, http.StatusNotFound},
		{"Does not exist", "kenji", "http://example.com/v1/trips/" + uuid.NewString(), http.StatusNotFound},
		{"Invalid ID", "kenji", "http://example.com/v1/trips/japan", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(tt.subject, http.MethodGet, tt.url, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestGetTripDatabaseError() {
	trip := suite.createTestTrip("kenji", map[string]any{})
	suite.CloseDB()

	r := suite.request("kenji", http.MethodGet, trip.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestUpdateTrip() {
	trip := suite.createTestTrip("kenji", map[string]any{"title": "Japan", "allocatedBudget": "1000"})

	r := suite.request("kenji", http.MethodPatch, trip.Links.Self, map[string]any{
		"title":        "Japan and Korea",
		"baseCurrency": "eur",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TripResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Japan and Korea", response.Data.Title)
	suite.Assert().Equal("EUR", response.Data.BaseCurrency)
	suite.Assert().True(decimal.NewFromInt(1000).Equal(response.Data.AllocatedBudget), "Allocated budget has been changed")
}

func (suite *TestSuiteStandard) TestUpdateTripErrors() {
	trip := suite.createTestTrip("kenji", map[string]any{})
	suite.invite("kenji", "mara", trip, true)

	tests := []struct {
		name    string
		subject string
		body    any
		status  int
	}{
		{"Member", "mara", map[string]any{"title": "Mine now"}, http.StatusForbidden},
		{"Empty title", "kenji", map[string]any{"title": ""}, http.StatusBadRequest},
		{"Unsupported currency", "kenji", map[string]any{"baseCurrency": "XYZ"}, http.StatusBadRequest},
		{"Broken body", "kenji", `{ "title": 2 }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(tt.subject, http.MethodPatch, trip.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r := suite.request("kenji", http.MethodGet, trip.Links.Self, "")
	var response v1.TripResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(trip.Title, response.Data.Title)
	suite.Assert().Equal(trip.BaseCurrency, response.Data.BaseCurrency)
}

func (suite *TestSuiteStandard) TestDeleteTrip() {
	trip := suite.createTestTrip("kenji", map[string]any{})
	suite.invite("kenji", "mara", trip, true)

	r := suite.request("mara", http.MethodDelete, trip.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = suite.request("kenji", http.MethodDelete, trip.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	for _, subject := range []string{"kenji", "mara"} {
		r = suite.request(subject, http.MethodGet, trip.Links.Self, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}
}
