// AngelaMos | 2026
// status.go

package billing

import (
	"time"
)

type Status struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

var (
	StatusOverdue = Status{Code: "overdue", Label: "Overdue"}
	StatusDueSoon = Status{Code: "due-soon", Label: "Due Soon"}
	StatusOK      = Status{Code: "ok", Label: "OK"}
)

// DueSoonWindowDays is the inclusive number of days before (or on) the
// due date during which a member counts as due soon rather than OK.
const DueSoonWindowDays = 3

// StatusFor classifies a due date against a reference date. A due date
// falling exactly on the reference date is due soon, not overdue.
func StatusFor(nextDue, today time.Time) Status {
	daysUntilDue := DaysBetween(today, nextDue)

	switch {
	case daysUntilDue < 0:
		return StatusOverdue
	case daysUntilDue <= DueSoonWindowDays:
		return StatusDueSoon
	default:
		return StatusOK
	}
}
