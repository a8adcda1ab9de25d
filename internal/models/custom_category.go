package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomCategory is an expense category defined by the participants of a trip.
type CustomCategory struct {
	DefaultModel
	Trip   Trip      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	TripID uuid.UUID `gorm:"uniqueIndex:custom_category_trip_name"`
	UserID uuid.UUID
	Name   string `gorm:"uniqueIndex:custom_category_trip_name"`
}

// BeforeSave lower cases the name so that it matches the categories of expenses.
func (c *CustomCategory) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.ToLower(strings.TrimSpace(c.Name))
	return nil
}

func (c *CustomCategory) AfterSave(_ *gorm.DB) error {
	if c.Name == "" {
		return ErrCustomCategoryNameEmpty
	}

	return nil
}

// CustomCategories returns the custom categories of the trip, sorted by name.
func (t Trip) CustomCategories(db *gorm.DB) ([]CustomCategory, error) {
	var categories []CustomCategory
	err := db.Where(&CustomCategory{TripID: t.ID}).Order("name ASC").Find(&categories).Error
	return categories, err
}
