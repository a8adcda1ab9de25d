package models_test

import (
	"github.com/tripbudget/backend/internal/models"
)

func (suite *TestSuiteStandard) TestActivityValidation() {
	trip := suite.createTestTrip(models.Trip{})

	tests := []struct {
		name     string
		activity models.Activity
		err      error
	}{
		{"Valid", models.Activity{Title: "Museum", DayIndex: 2, Time: "09:30"}, nil},
		{"Without time", models.Activity{Title: "Museum", DayIndex: 2}, nil},
		{"Title empty", models.Activity{Title: "", DayIndex: 1}, models.ErrActivityTitleEmpty},
		{"Day zero", models.Activity{Title: "Museum", DayIndex: 0}, models.ErrActivityDayInvalid},
		{"Time without leading zero", models.Activity{Title: "Museum", DayIndex: 1, Time: "9:30"}, models.ErrActivityTimeFormat},
		{"Time out of range", models.Activity{Title: "Museum", DayIndex: 1, Time: "24:00"}, models.ErrActivityTimeFormat},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			activity := tt.activity
			activity.TripID = trip.ID

			err := models.DB.Create(&activity).Error
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestActivitiesOrder() {
	trip := suite.createTestTrip(models.Trip{})

	untimed := suite.createTestActivity(models.Activity{TripID: trip.ID, Title: "Stroll", DayIndex: 1})
	late := suite.createTestActivity(models.Activity{TripID: trip.ID, Title: "Dinner", DayIndex: 1, Time: "19:00"})
	early := suite.createTestActivity(models.Activity{TripID: trip.ID, Title: "Breakfast", DayIndex: 1, Time: "08:00"})
	second := suite.createTestActivity(models.Activity{TripID: trip.ID, Title: "Flight home", DayIndex: 2, Time: "06:00"})

	activities, err := trip.Activities(models.DB, 0)
	suite.Require().Nil(err)
	suite.Require().Len(activities, 4)

	ids := []string{}
	for _, a := range activities {
		ids = append(ids, a.ID.String())
	}
	suite.Assert().Equal([]string{early.ID.String(), late.ID.String(), untimed.ID.String(), second.ID.String()}, ids)

	dayTwo, err := trip.Activities(models.DB, 2)
	suite.Require().Nil(err)
	suite.Require().Len(dayTwo, 1)
	suite.Assert().Equal(second.ID, dayTwo[0].ID)
}
