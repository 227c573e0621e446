// AngelaMos | 2026
// money.go

package billing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gympulse/gympulse/internal/core"
)

// Amounts are carried as integer cents end to end. The store persists
// NUMERIC(10,2); the wire formats render exactly two fractional digits.

// ParseCents converts decimal text such as "49.90", "50" or "50.5"
// into cents. More than two fractional digits or a negative amount is
// rejected.
func ParseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("parse amount %q: %w", s, core.ErrInvalidInput)
	}

	whole, frac, _ := strings.Cut(s, ".")

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, core.ErrInvalidInput)
	}

	var cents int64
	switch len(frac) {
	case 0:
	case 1:
		frac += "0"
		fallthrough
	case 2:
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse amount %q: %w", s, core.ErrInvalidInput)
		}
	default:
		return 0, fmt.Errorf("parse amount %q: %w", s, core.ErrInvalidInput)
	}

	return units*100 + cents, nil
}

// FormatCents renders cents as decimal text with exactly two
// fractional digits.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
