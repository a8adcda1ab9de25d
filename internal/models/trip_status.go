package models

import (
	"fmt"
	"time"
)

type TripPhase string

const (
	TripUpcoming TripPhase = "upcoming"
	TripOngoing  TripPhase = "ongoing"
	TripPast     TripPhase = "past"
)

// TripStatus describes where a trip is in time relative to a day.
type TripStatus struct {
	Phase TripPhase `json:"status" example:"ongoing"`  // One of upcoming, ongoing, past
	Text  string    `json:"text" example:"Day 3 of 7"` // Human readable description
	Day   int       `json:"day" example:"3"`           // Current day of the trip, 0 if the trip is not ongoing
	Days  int       `json:"days" example:"7"`          // Number of days of the trip
}

// Status returns the status of the trip on the calendar day of now.
// If the start or end date is not set, nil is returned.
func (t Trip) Status(now time.Time) *TripStatus {
	if t.StartDate == nil || t.EndDate == nil {
		return nil
	}

	today := civilDate(now)
	start := civilDate(*t.StartDate)
	end := civilDate(*t.EndDate)
	days := t.Days()

	if today.Before(start) {
		n := daysBetween(today, start)
		return &TripStatus{
			Phase: TripUpcoming,
			Text:  fmt.Sprintf("%d %s to go", n, pluralDays(n)),
			Days:  days,
		}
	}

	if !today.After(end) {
		day := daysBetween(start, today) + 1
		return &TripStatus{
			Phase: TripOngoing,
			Text:  fmt.Sprintf("Day %d of %d", day, days),
			Day:   day,
			Days:  days,
		}
	}

	n := daysBetween(end, today)
	return &TripStatus{
		Phase: TripPast,
		Text:  fmt.Sprintf("Ended %d %s ago", n, pluralDays(n)),
		Days:  days,
	}
}

func pluralDays(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}
