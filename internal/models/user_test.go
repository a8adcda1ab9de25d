package models_test

import (
	"github.com/tripbudget/backend/internal/models"
)

func (suite *TestSuiteStandard) TestEnsureUserCreates() {
	user, err := models.EnsureUser(models.DB, models.Identity{
		Subject: "user_2abc",
		Email:   " mia@example.com ",
	})
	suite.Require().Nil(err)

	suite.Assert().Equal("user_2abc", user.Subject)
	suite.Assert().Equal("mia@example.com", user.Email)
	suite.Assert().Equal("mia@example.com", user.Name, "Name must fall back to the email")
}

func (suite *TestSuiteStandard) TestEnsureUserUpdates() {
	created, err := models.EnsureUser(models.DB, models.Identity{Subject: "user_2abc", Name: "Mia"})
	suite.Require().Nil(err)

	updated, err := models.EnsureUser(models.DB, models.Identity{Subject: "user_2abc", Email: "mia@example.com"})
	suite.Require().Nil(err)

	suite.Assert().Equal(created.ID, updated.ID)
	suite.Assert().Equal("Mia", updated.Name, "Empty fields must not overwrite existing values")
	suite.Assert().Equal("mia@example.com", updated.Email)

	var count int64
	models.DB.Model(&models.User{}).Count(&count)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestUserSubjectUnique() {
	_ = suite.createTestUser(models.User{Subject: "duplicate"})

	err := models.DB.Create(&models.User{Subject: "duplicate"}).Error
	suite.Assert().ErrorIs(err, models.ErrUserSubjectNotUnique)
}

func (suite *TestSuiteStandard) TestSearchUsers() {
	self := suite.createTestUser(models.User{Name: "Searching Sam", Email: "sam@example.com"})
	friend := suite.createTestUser(models.User{Name: "Samantha", Email: "samantha@example.com"})
	stranger := suite.createTestUser(models.User{Name: "Samuel", Email: "samuel@example.org"})
	_ = suite.createTestUser(models.User{Name: "Kai", Email: "kai@example.org"})

	suite.befriend(self.ID, friend.ID)

	tests := []struct {
		name  string
		query string
		count int
		err   error
	}{
		{"Too short", "s", 0, models.ErrUserSearchTooShort},
		{"Whitespace only", "   ", 0, models.ErrUserSearchTooShort},
		{"By name, case insensitive", "SAM", 1, nil},
		{"By email", "example.org", 2, nil},
		{"No match", "zz", 0, nil},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			users, err := models.SearchUsers(models.DB, self.ID, tt.query, 10)
			suite.Assert().ErrorIs(err, tt.err)
			if tt.err != nil {
				return
			}

			suite.Assert().Len(users, tt.count)
			if tt.count == 1 {
				suite.Assert().Equal(stranger.ID, users[0].ID)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestSearchUsersLimit() {
	self := suite.createTestUser(models.User{Name: "Self"})
	for range 5 {
		_ = suite.createTestUser(models.User{Name: "Traveller"})
	}

	users, err := models.SearchUsers(models.DB, self.ID, "travel", 3)
	suite.Require().Nil(err)
	suite.Assert().Len(users, 3)
}

func (suite *TestSuiteStandard) TestDeleteUser() {
	user := suite.createTestUser(models.User{Name: "Leaving"})
	friend := suite.createTestUser(models.User{Name: "Staying"})
	suite.befriend(user.ID, friend.ID)

	owned := suite.createTestTrip(models.Trip{OwnerID: user.ID})
	other := suite.createTestTrip(models.Trip{OwnerID: friend.ID})
	participant, err := other.Invite(models.DB, friend.ID, user.ID)
	suite.Require().Nil(err)

	err = models.DeleteUser(models.DB, user)
	suite.Require().Nil(err)

	_, err = models.UserByID(models.DB, user.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	err = models.DB.First(&models.Trip{}, owned.ID).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound, "Owned trips must be deleted")

	err = models.DB.First(&models.Participant{}, participant.ID).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound, "Participations must be deleted")

	friends, err := models.Friends(models.DB, friend.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(friends, 0)
}
