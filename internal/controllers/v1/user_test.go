package v1_test

import (
	"net/http"

	v1 "github.com/tripbudget/backend/internal/controllers/v1"
	"github.com/tripbudget/backend/test"
)

func (suite *TestSuiteStandard) TestUnauthenticated() {
	for _, url := range []string{
		"http://example.com/v1/users/me",
		"http://example.com/v1/trips",
		"http://example.com/v1/friendships",
		"http://example.com/v1/participants",
	} {
		r := suite.request("", http.MethodGet, url, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
	}
}

func (suite *TestSuiteStandard) TestGetMe() {
	me := suite.me("kenji")

	suite.Assert().Equal("kenji@example.com", me.Email)
	suite.Assert().Equal("kenji@example.com", me.Name, "Name does not fall back to the email")
	suite.Require().NotNil(me.Links)
	suite.Assert().Equal("http://example.com/v1/users/me", me.Links.Self)

	// The same subject resolves to the same user
	suite.Assert().Equal(me.ID, suite.me("kenji").ID)
}

func (suite *TestSuiteStandard) TestGetMeProfileHeaders() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users/me", "", map[string]string{
		v1.HeaderUserID:    "kenji",
		v1.HeaderUserName:  "Kenji Sato",
		v1.HeaderUserImage: "https://example.com/kenji.png",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Kenji Sato", response.Data.Name)
	suite.Assert().Equal("https://example.com/kenji.png", response.Data.ImageURL)
}

func (suite *TestSuiteStandard) TestUpdateMe() {
	suite.me("kenji")

	r := suite.request("kenji", http.MethodPut, "http://example.com/v1/users/me", map[string]any{"name": "  Kenji Sato "})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Kenji Sato", response.Data.Name)

	// Only the name has been updated
	suite.Assert().Equal("kenji@example.com", suite.me("kenji").Email)
	suite.Assert().Equal("Kenji Sato", suite.me("kenji").Name)
}

func (suite *TestSuiteStandard) TestUpdateMeBrokenBody() {
	r := suite.request("kenji", http.MethodPut, "http://example.com/v1/users/me", `{ "name": 2 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDeleteMe() {
	kenji := suite.me("kenji")
	trip := suite.createTestTrip("kenji", map[string]any{})

	r := suite.request("kenji", http.MethodDelete, "http://example.com/v1/users/me", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The next request creates a new user
	suite.Assert().NotEqual(kenji.ID, suite.me("kenji").ID)

	r = suite.request("kenji", http.MethodGet, trip.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSearchUsers() {
	suite.me("kenji")
	suite.me("keiko")
	suite.me("mara")
	suite.befriend("kenji", "mara")

	r := suite.request("kenji", http.MethodGet, "http://example.com/v1/users?search=K", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request("kenji", http.MethodGet, "http://example.com/v1/users?search=EXAMPLE", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UserListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// kenji is the searching user and mara is already a friend
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("keiko@example.com", response.Data[0].Email)
	suite.Assert().Nil(response.Data[0].Links)
}
