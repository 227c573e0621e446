// AngelaMos | 2026
// csv.go

package member

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gympulse/gympulse/internal/billing"
)

var csvHeader = []string{
	"id",
	"name",
	"phone",
	"admission_date",
	"plan_months",
	"fee_amount",
	"next_due_date",
	"created_at",
}

// WriteCSV renders members in the fixed export format: header row, one
// row per member in the given order, fee with exactly two fractional
// digits, absent phone as an empty field.
func WriteCSV(w io.Writer, members []Member) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for i := range members {
		m := &members[i]
		record := []string{
			strconv.FormatInt(m.ID, 10),
			m.Name,
			m.PhoneOrEmpty(),
			m.AdmissionDate.Format(dateLayout),
			strconv.Itoa(m.PlanMonths),
			billing.FormatCents(m.FeeCents),
			m.NextDueDate.Format(dateLayout),
			m.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	return nil
}
