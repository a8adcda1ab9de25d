package models_test

import (
	"github.com/google/uuid"
	"github.com/tripbudget/backend/internal/models"
)

func (suite *TestSuiteStandard) TestAccessTrip() {
	owner := suite.createTestUser(models.User{})
	member := suite.createTestUser(models.User{})
	invited := suite.createTestUser(models.User{})
	stranger := suite.createTestUser(models.User{})
	suite.befriend(owner.ID, member.ID)
	suite.befriend(owner.ID, invited.ID)

	trip := suite.createTestTrip(models.Trip{OwnerID: owner.ID})

	participant, err := trip.Invite(models.DB, owner.ID, member.ID)
	suite.Require().Nil(err)
	suite.Require().Nil(participant.Respond(models.DB, models.StatusAccepted))

	_, err = trip.Invite(models.DB, owner.ID, invited.ID)
	suite.Require().Nil(err)

	tests := []struct {
		name string
		user uuid.UUID
		role models.Role
		err  error
	}{
		{"Owner", owner.ID, models.RoleOwner, nil},
		{"Accepted member", member.ID, models.RoleMember, nil},
		{"Pending invitation", invited.ID, "", models.ErrResourceNotFound},
		{"Stranger", stranger.ID, "", models.ErrResourceNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			access, err := models.AccessTrip(models.DB, trip.ID, tt.user)
			suite.Assert().ErrorIs(err, tt.err)
			suite.Assert().Equal(tt.role, access.Role)
		})
	}

	_, err = models.AccessTrip(models.DB, uuid.New(), owner.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTripAccessChecks() {
	owner := uuid.New()
	member := uuid.New()
	other := uuid.New()

	ownerAccess := models.TripAccess{UserID: owner, Role: models.RoleOwner}
	memberAccess := models.TripAccess{UserID: member, Role: models.RoleMember}

	suite.Assert().Nil(ownerAccess.RequireOwner())
	suite.Assert().ErrorIs(memberAccess.RequireOwner(), models.ErrForbidden)

	suite.Assert().Nil(ownerAccess.RequireCreatorOrOwner(other), "Owners can modify all resources")
	suite.Assert().Nil(memberAccess.RequireCreatorOrOwner(member))
	suite.Assert().ErrorIs(memberAccess.RequireCreatorOrOwner(other), models.ErrForbidden)
}
