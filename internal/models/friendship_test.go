package models_test

import (
	"github.com/google/uuid"
	"github.com/tripbudget/backend/internal/models"
)

func (suite *TestSuiteStandard) TestSendFriendRequest() {
	alice := suite.createTestUser(models.User{Name: "Alice"})
	bob := suite.createTestUser(models.User{Name: "Bob"})

	tests := []struct {
		name string
		from uuid.UUID
		to   uuid.UUID
		err  error
	}{
		{"To self", alice.ID, alice.ID, models.ErrFriendshipSelf},
		{"Unknown user", alice.ID, uuid.New(), models.ErrResourceNotFound},
		{"Valid", alice.ID, bob.ID, nil},
		{"Same direction again", alice.ID, bob.ID, models.ErrFriendshipExists},
		{"Other direction", bob.ID, alice.ID, models.ErrFriendshipExists},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			friendship, err := models.SendFriendRequest(models.DB, tt.from, tt.to)
			suite.Assert().ErrorIs(err, tt.err)

			if tt.err == nil {
				suite.Assert().Equal(models.FriendshipPending, friendship.Status)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestAcceptFriendRequest() {
	alice := suite.createTestUser(models.User{Name: "Alice"})
	bob := suite.createTestUser(models.User{Name: "Bob"})

	friendship, err := models.SendFriendRequest(models.DB, alice.ID, bob.ID)
	suite.Require().Nil(err)

	suite.Assert().ErrorIs(friendship.Accept(models.DB, alice.ID), models.ErrForbidden, "The sender cannot accept")

	ok, err := models.AreFriends(models.DB, alice.ID, bob.ID)
	suite.Require().Nil(err)
	suite.Assert().False(ok)

	suite.Require().Nil(friendship.Accept(models.DB, bob.ID))
	suite.Assert().ErrorIs(friendship.Accept(models.DB, bob.ID), models.ErrFriendshipNotPending)

	ok, err = models.AreFriends(models.DB, bob.ID, alice.ID)
	suite.Require().Nil(err)
	suite.Assert().True(ok)
}

func (suite *TestSuiteStandard) TestFriendLists() {
	alice := suite.createTestUser(models.User{Name: "Alice"})
	bob := suite.createTestUser(models.User{Name: "Bob"})
	carol := suite.createTestUser(models.User{Name: "Carol"})
	dave := suite.createTestUser(models.User{Name: "Dave"})

	suite.befriend(bob.ID, alice.ID)

	_, err := models.SendFriendRequest(models.DB, carol.ID, alice.ID)
	suite.Require().Nil(err)

	_, err = models.SendFriendRequest(models.DB, alice.ID, dave.ID)
	suite.Require().Nil(err)

	friends, err := models.Friends(models.DB, alice.ID)
	suite.Require().Nil(err)
	suite.Require().Len(friends, 1)
	suite.Assert().Equal(bob.ID, friends[0].User.ID)

	incoming, err := models.IncomingRequests(models.DB, alice.ID)
	suite.Require().Nil(err)
	suite.Require().Len(incoming, 1)
	suite.Assert().Equal(carol.ID, incoming[0].User.ID)

	sent, err := models.SentRequests(models.DB, alice.ID)
	suite.Require().Nil(err)
	suite.Require().Len(sent, 1)
	suite.Assert().Equal(dave.ID, sent[0].User.ID)
}

func (suite *TestSuiteStandard) TestRejectFriendRequest() {
	alice := suite.createTestUser(models.User{})
	bob := suite.createTestUser(models.User{})
	carol := suite.createTestUser(models.User{})

	friendship, err := models.SendFriendRequest(models.DB, alice.ID, bob.ID)
	suite.Require().Nil(err)

	_, err = models.FriendshipForUser(models.DB, friendship.ID, carol.ID)
	suite.Assert().ErrorIs(err, models.ErrForbidden)
	suite.Assert().ErrorIs(friendship.Reject(models.DB, carol.ID), models.ErrForbidden)

	// The sender cancels the request
	suite.Require().Nil(friendship.Reject(models.DB, alice.ID))

	_, err = models.FriendshipForUser(models.DB, friendship.ID, alice.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	// A new request is possible afterwards
	_, err = models.SendFriendRequest(models.DB, bob.ID, alice.ID)
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestRemoveFriend() {
	alice := suite.createTestUser(models.User{})
	bob := suite.createTestUser(models.User{})
	suite.befriend(alice.ID, bob.ID)

	// Either side can remove the friendship
	suite.Require().Nil(models.RemoveFriend(models.DB, bob.ID, alice.ID))

	ok, err := models.AreFriends(models.DB, alice.ID, bob.ID)
	suite.Require().Nil(err)
	suite.Assert().False(ok)

	err = models.RemoveFriend(models.DB, bob.ID, alice.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestBlockUser() {
	alice := suite.createTestUser(models.User{})
	bob := suite.createTestUser(models.User{})
	carol := suite.createTestUser(models.User{})

	suite.befriend(alice.ID, bob.ID)

	_, err := models.BlockUser(models.DB, bob.ID, bob.ID)
	suite.Assert().ErrorIs(err, models.ErrFriendshipSelf)

	blocked, err := models.BlockUser(models.DB, bob.ID, alice.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(bob.ID, blocked.UserID, "The blocking user must be stored as user")
	suite.Assert().Equal(alice.ID, blocked.FriendID)
	suite.Assert().Equal(models.FriendshipBlocked, blocked.Status)

	var count int64
	models.DB.Model(&models.Friendship{}).Count(&count)
	suite.Assert().Equal(int64(1), count, "The existing relation must be converted")

	ok, err := models.AreFriends(models.DB, alice.ID, bob.ID)
	suite.Require().Nil(err)
	suite.Assert().False(ok)

	_, err = models.SendFriendRequest(models.DB, alice.ID, bob.ID)
	suite.Assert().ErrorIs(err, models.ErrFriendshipExists)

	created, err := models.BlockUser(models.DB, carol.ID, alice.ID)
	suite.Require().Nil(err)
	suite.Assert().NotEqual(uuid.Nil, created.ID)
}
