package models

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var activityTime = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Activity is an entry in the itinerary of a trip.
type Activity struct {
	DefaultModel
	Trip        Trip      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	TripID      uuid.UUID `gorm:"index:activity_trip_day"`
	UserID      uuid.UUID
	Title       string
	Description string
	Time        string `gorm:"column:start_time"` // HH:MM, empty if the activity has no fixed time
	DayIndex    int    `gorm:"index:activity_trip_day"`
	Notes       string
	Category    string
	Completed   bool
	RemindMe    bool
}

func (a *Activity) BeforeSave(_ *gorm.DB) error {
	a.Title = strings.TrimSpace(a.Title)
	a.Time = strings.TrimSpace(a.Time)
	a.Category = strings.ToLower(strings.TrimSpace(a.Category))

	return nil
}

func (a *Activity) AfterSave(_ *gorm.DB) error {
	if a.Title == "" {
		return ErrActivityTitleEmpty
	}

	if a.DayIndex < 1 {
		return ErrActivityDayInvalid
	}

	if a.Time != "" && !activityTime.MatchString(a.Time) {
		return ErrActivityTimeFormat
	}

	return nil
}

// Activities returns the activities of the trip ordered by day and time.
// Activities without a time are sorted after the timed ones of the same day.
// If day is larger than 0, only activities of that day are returned.
func (t Trip) Activities(db *gorm.DB, day int) ([]Activity, error) {
	query := db.Where(&Activity{TripID: t.ID, DayIndex: day})

	var activities []Activity
	err := query.
		Order("day_index ASC").
		Order("CASE WHEN start_time = '' THEN 1 ELSE 0 END").
		Order("start_time ASC").
		Order("created_at ASC").
		Find(&activities).Error

	return activities, err
}
