package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// CategoryRule assigns a category to expenses created without one when
// the expense name matches the glob pattern in Match.
type CategoryRule struct {
	DefaultModel
	Trip     Trip      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	TripID   uuid.UUID `gorm:"index"`
	Priority uint
	Match    string
	Category string
}

func (r *CategoryRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	r.Category = strings.TrimSpace(r.Category)

	return nil
}

func (r *CategoryRule) AfterSave(_ *gorm.DB) error {
	if r.Match == "" {
		return ErrCategoryRuleMatchEmpty
	}

	if r.Category == "" {
		return ErrCategoryRuleCategoryEmpty
	}

	return nil
}

// CategoryRules returns the rules of the trip in the order they are applied.
func (t Trip) CategoryRules(db *gorm.DB) ([]CategoryRule, error) {
	var rules []CategoryRule
	err := db.Where(&CategoryRule{TripID: t.ID}).Order("priority ASC, created_at ASC").Find(&rules).Error
	return rules, err
}

// matchCategory returns the category of the first rule matching the name.
// Matching ignores case. If no rule matches, the empty string is returned.
func matchCategory(rules []CategoryRule, name string) string {
	name = strings.ToLower(name)
	for _, rule := range rules {
		// Rules are sorted by priority, the first match wins
		if glob.Glob(strings.ToLower(rule.Match), name) {
			return rule.Category
		}
	}

	return ""
}
