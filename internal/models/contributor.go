package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Contributor is a person contributing money to the budget of a trip.
type Contributor struct {
	DefaultModel
	Trip   Trip      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	TripID uuid.UUID `gorm:"index"`
	UserID uuid.UUID
	Name   string
	Amount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (c *Contributor) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

func (c *Contributor) AfterSave(_ *gorm.DB) error {
	if c.Name == "" {
		return ErrContributorNameEmpty
	}

	if c.Amount.IsNegative() {
		return ErrContributorAmountNegative
	}

	return nil
}

// Contributors returns the contributors of the trip.
func (t Trip) Contributors(db *gorm.DB) ([]Contributor, error) {
	var contributors []Contributor
	err := db.Where(&Contributor{TripID: t.ID}).Order("created_at ASC").Find(&contributors).Error
	return contributors, err
}
