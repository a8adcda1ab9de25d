package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tripbudget/backend/internal/currency"
	"gorm.io/gorm"
)

// Trip is a journey with a budget, shared between its participants.
type Trip struct {
	DefaultModel
	OwnerID         uuid.UUID `gorm:"index"`
	Title           string
	AllocatedBudget decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	BaseCurrency    string
	StartDate       *time.Time
	EndDate         *time.Time
}

func (t *Trip) BeforeSave(_ *gorm.DB) error {
	t.Title = strings.TrimSpace(t.Title)
	t.BaseCurrency = currency.Normalize(t.BaseCurrency)

	return nil
}

// AfterSave validates the trip. Returning an error rolls back the transaction.
func (t *Trip) AfterSave(_ *gorm.DB) error {
	if t.Title == "" {
		return ErrTripTitleEmpty
	}

	if t.BaseCurrency == "" {
		return ErrTripCurrencyMissing
	}

	if err := currency.Validate(t.BaseCurrency); err != nil {
		return err
	}

	if t.AllocatedBudget.IsNegative() {
		return ErrTripBudgetNegative
	}

	if t.StartDate != nil && t.EndDate != nil && t.EndDate.Before(*t.StartDate) {
		return ErrTripDatesInvalid
	}

	return nil
}

// CreateTrip creates the trip and adds the owner as accepted participant.
func CreateTrip(db *gorm.DB, trip *Trip) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Create(trip).Error
		if err != nil {
			return err
		}

		return tx.Create(&Participant{
			TripID: trip.ID,
			UserID: trip.OwnerID,
			Role:   RoleOwner,
			Status: StatusAccepted,
		}).Error
	})
}

// TripsForUser returns all trips the user owns or participates in,
// newest first.
func TripsForUser(db *gorm.DB, userID uuid.UUID) ([]Trip, error) {
	var trips []Trip
	err := db.
		Where("owner_id = ? OR id IN (?)", userID,
			db.Model(&Participant{}).Select("trip_id").Where(&Participant{UserID: userID, Status: StatusAccepted})).
		Order("created_at DESC").
		Find(&trips).Error

	return trips, err
}

// Expenses returns all expenses of the trip.
func (t Trip) Expenses(db *gorm.DB) ([]Expense, error) {
	var expenses []Expense
	err := db.Where(&Expense{TripID: t.ID}).Order("date DESC, created_at DESC").Find(&expenses).Error
	return expenses, err
}

// Days returns the number of days of the trip, including the first and last day.
// If the dates are not set, 0 is returned.
func (t Trip) Days() int {
	if t.StartDate == nil || t.EndDate == nil {
		return 0
	}

	return daysBetween(*t.StartDate, *t.EndDate) + 1
}

// civilDate returns midnight UTC of the calendar date of t in its own location.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the number of calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(civilDate(b).Sub(civilDate(a)).Hours() / 24)
}
