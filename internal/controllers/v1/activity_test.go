package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/tripbudget/backend/internal/controllers/v1"
	"github.com/tripbudget/backend/internal/models"
	"github.com/tripbudget/backend/test"
)

func (suite *TestSuiteStandard) createItineraryTrip() v1.Trip {
	trip := suite.createTestTrip("kenji", map[string]any{
		"startDate": time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		"endDate":   time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC),
	})

	suite.createTestActivity("kenji", trip, map[string]any{"title": "Arrival", "dayIndex": 1})
	suite.createTestActivity("kenji", trip, map[string]any{"title": "Dinner", "dayIndex": 2})
	suite.createTestActivity("kenji", trip, map[string]any{"title": "Tea ceremony", "dayIndex": 2, "time": "14:00", "remindMe": true})
	suite.createTestActivity("kenji", trip, map[string]any{"title": "Train to Kyoto", "dayIndex": 2, "time": "09:30", "remindMe": true, "category": "Transport"})

	return trip
}

func (suite *TestSuiteStandard) TestGetActivities() {
	trip := suite.createItineraryTrip()

	r := suite.request("kenji", http.MethodGet, trip.Links.Activities, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ActivityListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	titles := []string{}
	for _, a := range response.Data {
		titles = append(titles, a.Title)
	}
	suite.Assert().Equal([]string{"Arrival", "Train to Kyoto", "Tea ceremony", "Dinner"}, titles)
	suite.Assert().Equal("transport", response.Data[1].Category)

	r = suite.request("kenji", http.MethodGet, trip.Links.Activities+"?day=1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Arrival", response.Data[0].Title)

	for _, query := range []string{"?day=-1", "?day=monday"} {
		r = suite.request("kenji", http.MethodGet, trip.Links.Activities+query, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestCreateActivitiesErrors() {
	trip := suite.createTestTrip("kenji", map[string]any{})

	r := suite.request("kenji", http.MethodPost, trip.Links.Activities, []map[string]any{
		{"title": "", "dayIndex": 1},
		{"title": "Temple", "dayIndex": 0},
		{"title": "Temple", "dayIndex": 1, "time": "9:30"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ActivityCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal(models.ErrActivityTitleEmpty.Error(), *response.Data[0].Error)
	suite.Assert().Equal(models.ErrActivityDayInvalid.Error(), *response.Data[1].Error)
	suite.Assert().Equal(models.ErrActivityTimeFormat.Error(), *response.Data[2].Error)
}

func (suite *TestSuiteStandard) TestUpdateActivity() {
	trip := suite.createTestTrip("kenji", map[string]any{})
	suite.invite("kenji", "mara", trip, true)
	activity := suite.createTestActivity("mara", trip, map[string]any{"title": "Karaoke"})

	r := suite.request("mara", http.MethodPatch, activity.Links.Self, map[string]any{"completed": true, "time": "21:00"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ActivityResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.Completed)
	suite.Assert().Equal("21:00", response.Data.Time)
	suite.Assert().Equal("Karaoke", response.Data.Title)

	r = suite.request("mara", http.MethodPatch, activity.Links.Self, map[string]any{"time": "25:00"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request("keiko", http.MethodGet, activity.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteActivity() {
	trip := suite.createTestTrip("kenji", map[string]any{})
	suite.invite("kenji", "mara", trip, true)
	activity := suite.createTestActivity("kenji", trip, map[string]any{})

	r := suite.request("mara", http.MethodDelete, activity.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = suite.request("kenji", http.MethodDelete, activity.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request("kenji", http.MethodGet, activity.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetTripReminders() {
	trip := suite.createItineraryTrip()

	r := suite.request("kenji", http.MethodGet, trip.Links.Reminders+"?now=2024-04-02T09:22:00Z", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReminderListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(models.ReminderTenMinutes, response.Data[0].Kind)
	suite.Assert().Equal("09:30 - Train to Kyoto Don't miss your transport!", response.Data[0].Description)
	suite.Assert().Equal(models.ReminderDailySummary, response.Data[1].Kind)
	suite.Assert().Equal("You have 3 activities planned for today!", response.Data[1].Message)
	suite.Assert().Equal("09:30 - Train to Kyoto • 14:00 - Tea ceremony • Dinner", response.Data[1].Description)

	r = suite.request("kenji", http.MethodGet, trip.Links.Reminders+"?now=2024-03-31T12:00:00Z", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(models.ReminderStartTomorrow, response.Data[0].Kind)
	suite.Assert().Equal("1 activity planned for Day 1", response.Data[0].Description)

	r = suite.request("kenji", http.MethodGet, trip.Links.Reminders+"?now=tomorrow", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
