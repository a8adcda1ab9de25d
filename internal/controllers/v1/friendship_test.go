package v1_test

import (
	"net/http"

	v1 "github.com/tripbudget/backend/internal/controllers/v1"
	"github.com/tripbudget/backend/internal/models"
	"github.com/tripbudget/backend/test"
)

func (suite *TestSuiteStandard) friends(subject, list string) []v1.Friend {
	r := suite.request(subject, http.MethodGet, "http://example.com/v1/friendships"+list, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.FriendListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response.Data
}

func (suite *TestSuiteStandard) TestFriendRequest() {
	kenji := suite.me("kenji")
	mara := suite.me("mara")

	r := suite.request("kenji", http.MethodPost, "http://example.com/v1/friendships", map[string]any{"userId": mara.ID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.FriendshipResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.FriendshipPending, response.Data.Status)
	suite.Assert().Equal(kenji.ID, response.Data.UserID)

	sent := suite.friends("kenji", "/sent")
	suite.Require().Len(sent, 1)
	suite.Assert().Equal(mara.ID, sent[0].User.ID)

	incoming := suite.friends("mara", "/incoming")
	suite.Require().Len(incoming, 1)
	suite.Assert().Equal(kenji.ID, incoming[0].User.ID)

	// Only the recipient can accept
	r = suite.request("kenji", http.MethodPost, response.Data.Links.Accept, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = suite.request("mara", http.MethodPost, response.Data.Links.Accept, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request("mara", http.MethodPost, response.Data.Links.Accept, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	for _, subject := range []string{"kenji", "mara"} {
		suite.Assert().Len(suite.friends(subject, ""), 1)
		suite.Assert().Len(suite.friends(subject, "/incoming"), 0)
		suite.Assert().Len(suite.friends(subject, "/sent"), 0)
	}
}

func (suite *TestSuiteStandard) TestFriendRequestErrors() {
	kenji := suite.me("kenji")
	mara := suite.me("mara")
	suite.befriend("kenji", "mara")

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Self", map[string]any{"userId": kenji.ID}, http.StatusBadRequest},
		{"Existing friendship", map[string]any{"userId": mara.ID}, http.StatusBadRequest},
		{"No user", map[string]any{}, http.StatusBadRequest},
		{"Broken body", `{ "userId": 2 }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		r := suite.request("kenji", http.MethodPost, "http://example.com/v1/friendships", tt.body)
		test.AssertHTTPStatus(suite.T(), &r, tt.status)
	}

	// The reverse direction is an existing friendship, too
	r := suite.request("mara", http.MethodPost, "http://example.com/v1/friendships", map[string]any{"userId": kenji.ID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRejectFriendRequest() {
	mara := suite.me("mara")

	r := suite.request("kenji", http.MethodPost, "http://example.com/v1/friendships", map[string]any{"userId": mara.ID})
	var response v1.FriendshipResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Uninvolved users cannot see the request
	r = suite.request("keiko", http.MethodDelete, response.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = suite.request("mara", http.MethodDelete, response.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	suite.Assert().Len(suite.friends("kenji", "/sent"), 0)
	suite.Assert().Len(suite.friends("mara", "/incoming"), 0)
}

func (suite *TestSuiteStandard) TestRemoveFriend() {
	kenji := suite.me("kenji")
	suite.befriend("kenji", "mara")

	r := suite.request("mara", http.MethodDelete, "http://example.com/v1/friends/"+kenji.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	suite.Assert().Len(suite.friends("kenji", ""), 0)

	r = suite.request("mara", http.MethodDelete, "http://example.com/v1/friends/"+kenji.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBlockUser() {
	kenji := suite.me("kenji")
	suite.befriend("kenji", "mara")

	r := suite.request("mara", http.MethodPost, "http://example.com/v1/friendships/block", map[string]any{"userId": kenji.ID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.FriendshipResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.FriendshipBlocked, response.Data.Status)
	suite.Assert().Equal(suite.me("mara").ID, response.Data.UserID)

	suite.Assert().Len(suite.friends("kenji", ""), 0)

	// Blocked users cannot send requests
	r = suite.request("kenji", http.MethodPost, "http://example.com/v1/friendships", map[string]any{"userId": suite.me("mara").ID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// And are not found by the search
	r = suite.request("kenji", http.MethodGet, "http://example.com/v1/users?search=mara", "")
	var users v1.UserListResponse
	test.DecodeResponse(suite.T(), &r, &users)
	suite.Assert().Len(users.Data, 0)
}
