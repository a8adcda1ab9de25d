package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tripbudget/backend/internal/budget"
	"github.com/tripbudget/backend/internal/currency"
	"gorm.io/gorm"
)

// DefaultCategory is used for expenses that have no category and
// match no category rule.
const DefaultCategory = "other"

// Expense is money spent or planned to be spent on a trip.
type Expense struct {
	DefaultModel
	Trip     Trip      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	TripID   uuid.UUID `gorm:"index"`
	UserID   uuid.UUID
	Name     string
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Currency string
	Category string `gorm:"index"`
	Date     time.Time
	DateTo   *time.Time
	Planned  bool
}

// BeforeSave trims the fields and sets the category for expenses that
// do not have one.
func (e *Expense) BeforeSave(tx *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	e.Currency = currency.Normalize(e.Currency)
	e.Category = strings.ToLower(strings.TrimSpace(e.Category))

	if e.Category != "" || e.TripID == uuid.Nil {
		return nil
	}

	rules, err := Trip{DefaultModel: DefaultModel{ID: e.TripID}}.CategoryRules(tx)
	if err != nil {
		return err
	}

	e.Category = matchCategory(rules, e.Name)
	if e.Category == "" {
		e.Category = DefaultCategory
	}

	return nil
}

// AfterSave validates the expense. Returning an error rolls back the transaction.
func (e *Expense) AfterSave(_ *gorm.DB) error {
	if e.Name == "" {
		return ErrExpenseNameEmpty
	}

	if e.Amount.IsNegative() {
		return ErrExpenseAmountNegative
	}

	if err := currency.Validate(e.Currency); err != nil {
		return err
	}

	if e.DateTo != nil && e.DateTo.Before(e.Date) {
		return ErrExpenseDatesInvalid
	}

	return nil
}

// Entry returns the expense as input for the budget calculations.
func (e Expense) Entry() budget.Entry {
	return budget.Entry{
		Amount:   e.Amount,
		Currency: e.Currency,
		Category: e.Category,
		Planned:  e.Planned,
	}
}

// Entries converts expenses into budget entries.
func Entries(expenses []Expense) []budget.Entry {
	entries := make([]budget.Entry, 0, len(expenses))
	for _, e := range expenses {
		entries = append(entries, e.Entry())
	}

	return entries
}
