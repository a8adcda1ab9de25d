package budget

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tripbudget/backend/internal/currency"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Alert is a notice about how much of the allocated budget is used up.
type Alert struct {
	Threshold   int      `json:"threshold" example:"75"`                                  // Percentage of the allocated budget that has been reached
	Projected   bool     `json:"projected" example:"false"`                               // True if planned expenses are included
	Severity    Severity `json:"severity" example:"warning"`                              // One of info, warning, error
	Message     string   `json:"message" example:"Warning: 75% of budget spent!"`         // Short message
	Description string   `json:"description" example:"Current spending: 78.2% (€782.00)"` // Details with the current figures
}

var thresholds = []struct {
	level    int
	severity Severity
	message  string
}{
	{50, SeverityInfo, "You've spent 50% of your budget"},
	{75, SeverityWarning, "Warning: 75% of budget spent!"},
	{90, SeverityWarning, "Alert: 90% of budget spent!"},
	{100, SeverityError, "Budget exceeded!"},
}

// Alerts returns all alerts for the snapshot. No alerts are returned when no
// budget is allocated.
func Alerts(s Snapshot, allocated decimal.Decimal, base string) []Alert {
	alerts := []Alert{}
	if !allocated.IsPositive() {
		return alerts
	}

	spent := s.TotalSpent.Div(allocated).Mul(hundred)
	for _, t := range thresholds {
		if spent.LessThan(decimal.NewFromInt(int64(t.level))) {
			continue
		}

		alerts = append(alerts, Alert{
			Threshold:   t.level,
			Severity:    t.severity,
			Message:     t.message,
			Description: fmt.Sprintf("Current spending: %s%% (%s)", spent.StringFixed(1), currency.Format(s.TotalSpent, base)),
		})
	}

	total := s.TotalSpent.Add(s.TotalPlanned)
	projected := total.Div(allocated).Mul(hundred)
	if projected.GreaterThanOrEqual(hundred) {
		alerts = append(alerts, Alert{
			Threshold:   100,
			Projected:   true,
			Severity:    SeverityWarning,
			Message:     "Projected budget will exceed limit!",
			Description: fmt.Sprintf("With planned expenses: %s%% (%s)", projected.StringFixed(1), currency.Format(total, base)),
		})
	}

	return alerts
}
