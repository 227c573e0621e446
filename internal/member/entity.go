// AngelaMos | 2026
// entity.go

package member

import (
	"time"
)

type Member struct {
	ID            int64     `db:"id"`
	Name          string    `db:"name"`
	Phone         *string   `db:"phone"`
	AdmissionDate time.Time `db:"admission_date"`
	PlanMonths    int       `db:"plan_months"`
	FeeCents      int64     `db:"fee_cents"`
	NextDueDate   time.Time `db:"next_due_date"`
	CreatedAt     time.Time `db:"created_at"`
}

// PhoneOrEmpty unwraps the optional phone for display and export.
func (m *Member) PhoneOrEmpty() string {
	if m.Phone == nil {
		return ""
	}
	return *m.Phone
}

// Status filter values accepted by the listing operation.
const (
	FilterAll     = "all"
	FilterOverdue = "overdue"
	FilterDueSoon = "due-soon"
)
