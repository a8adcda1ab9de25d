package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ReminderKind string

const (
	ReminderThirtyMinutes ReminderKind = "30min"
	ReminderTenMinutes    ReminderKind = "10min"
	ReminderDailySummary  ReminderKind = "daily"
	ReminderStartTomorrow ReminderKind = "tomorrow"
)

// Reminder is a notification about upcoming activities.
type Reminder struct {
	Kind        ReminderKind `json:"kind" example:"10min"`                         // One of 30min, 10min, daily, tomorrow
	ActivityID  *uuid.UUID   `json:"activityId,omitempty"`                         // Activity the reminder is for. Not set for summaries
	Message     string       `json:"message" example:"Activity in 10 minutes!"`    // Short message
	Description string       `json:"description" example:"09:30 - Train to Kyoto"` // Details
}

// Reminders returns the reminders that are due at now for the activities
// of the trip. The day of the trip is determined by the calendar date of now
// in its location, activity times are interpreted in the same location.
//
// Trips without start or end date have no reminders.
func (t Trip) Reminders(activities []Activity, now time.Time) []Reminder {
	if t.StartDate == nil || t.EndDate == nil || len(activities) == 0 {
		return []Reminder{}
	}

	reminders := []Reminder{}

	today := civilDate(now)
	start := civilDate(*t.StartDate)
	end := civilDate(*t.EndDate)

	if !today.Before(start) && !today.After(end) {
		day := daysBetween(start, today) + 1
		reminders = append(reminders, timedReminders(activities, day, now)...)

		if summary, ok := dailySummary(activities, day); ok {
			reminders = append(reminders, summary)
		}
	}

	if daysBetween(today, start) == 1 {
		count := 0
		for _, a := range activities {
			if a.DayIndex == 1 {
				count++
			}
		}

		if count > 0 {
			reminders = append(reminders, Reminder{
				Kind:        ReminderStartTomorrow,
				Message:     "Trip starts tomorrow!",
				Description: fmt.Sprintf("%d %s planned for Day 1", count, pluralActivities(count)),
			})
		}
	}

	return reminders
}

// timedReminders returns the 30 and 10 minute reminders for the activities
// of the day that have a time and a reminder set.
func timedReminders(activities []Activity, day int, now time.Time) []Reminder {
	reminders := []Reminder{}

	for _, a := range activities {
		if a.DayIndex != day || !a.RemindMe || a.Completed || a.Time == "" {
			continue
		}

		at, err := time.ParseInLocation("15:04", a.Time, now.Location())
		if err != nil {
			continue
		}

		y, m, d := now.Date()
		at = time.Date(y, m, d, at.Hour(), at.Minute(), 0, 0, now.Location())
		if at.Before(now) {
			continue
		}

		minutes := int(at.Sub(now).Minutes())

		id := a.ID
		switch {
		case minutes > 10 && minutes <= 30:
			description := fmt.Sprintf("%s - %s", a.Time, a.Title)
			if a.Category == "transport" {
				description += " 🚌"
			}

			reminders = append(reminders, Reminder{
				Kind:        ReminderThirtyMinutes,
				ActivityID:  &id,
				Message:     "Activity in 30 minutes!",
				Description: description,
			})
		case minutes <= 10:
			description := fmt.Sprintf("%s - %s", a.Time, a.Title)
			if a.Category == "transport" {
				description += " Don't miss your transport!"
			}

			reminders = append(reminders, Reminder{
				Kind:        ReminderTenMinutes,
				ActivityID:  &id,
				Message:     "Activity in 10 minutes!",
				Description: description,
			})
		}
	}

	return reminders
}

// dailySummary summarizes the open activities of the day.
func dailySummary(activities []Activity, day int) (Reminder, bool) {
	var open []Activity
	for _, a := range activities {
		if a.DayIndex == day && !a.Completed {
			open = append(open, a)
		}
	}

	if len(open) == 0 {
		return Reminder{}, false
	}

	parts := make([]string, 0, 3)
	for _, a := range open[:min(3, len(open))] {
		if a.Time != "" {
			parts = append(parts, fmt.Sprintf("%s - %s", a.Time, a.Title))
			continue
		}
		parts = append(parts, a.Title)
	}

	return Reminder{
		Kind:        ReminderDailySummary,
		Message:     fmt.Sprintf("You have %d %s planned for today!", len(open), pluralActivities(len(open))),
		Description: strings.Join(parts, " • "),
	}, true
}

func pluralActivities(n int) string {
	if n == 1 {
		return "activity"
	}
	return "activities"
}
