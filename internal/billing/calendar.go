// AngelaMos | 2026
// calendar.go

package billing

import (
	"fmt"
	"time"

	"github.com/gympulse/gympulse/internal/core"
)

// AddMonths advances a calendar date by a whole number of months,
// clamping the day when the target month is shorter. Advancing
// Jan 31 by one month yields Feb 28 (29 in a leap year), never Mar 3.
// Only forward movement is supported; a negative count is rejected.
func AddMonths(start time.Time, months int) (time.Time, error) {
	if months < 0 {
		return time.Time{}, fmt.Errorf(
			"add months: count %d is negative: %w",
			months,
			core.ErrInvalidInput,
		)
	}

	year, month, day := start.Date()

	monthIdx := int(month) - 1 + months
	year += monthIdx / 12
	month = time.Month(monthIdx%12 + 1)

	if max := DaysInMonth(year, month); day > max {
		day = max
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// DaysInMonth returns the number of days in the given month per the
// Gregorian calendar.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// Date normalizes a timestamp to a pure calendar date (UTC midnight).
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed number of whole calendar days from
// one date to another, ignoring any time-of-day component.
func DaysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()

	f := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)

	return int(t.Sub(f) / (24 * time.Hour))
}
