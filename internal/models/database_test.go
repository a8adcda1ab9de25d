package models_test

import (
	"github.com/google/uuid"
	"github.com/tripbudget/backend/internal/models"
)

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	err := models.Connect("/nonexistent/directory/tripbudget.db")
	suite.Assert().NotNil(err)

	// Restore a working connection for the teardown
	suite.SetupTest()
}

func (suite *TestSuiteStandard) TestNotFoundNamesResource() {
	tests := []struct {
		name  string
		model any
		msg   string
	}{
		{"Trip", &models.Trip{}, "there is no trip matching your query"},
		{"Custom category", &models.CustomCategory{}, "there is no custom category matching your query"},
		{"Activity", &models.Activity{}, "there is no activity matching your query"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := models.DB.First(tt.model, uuid.New()).Error
			suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
			suite.Assert().EqualError(err, tt.msg)
		})
	}
}

func (suite *TestSuiteStandard) TestClosedDatabase() {
	suite.CloseDB()

	err := models.DB.Create(&models.User{Subject: "closed"}).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestForeignKeyViolation() {
	err := models.DB.Create(&models.Expense{
		TripID:   uuid.New(),
		Name:     "Orphan",
		Currency: "USD",
	}).Error

	suite.Assert().ErrorIs(err, models.ErrReferenceNotFound)
}
