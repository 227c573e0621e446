// AngelaMos | 2026
// entity.go

package payment

import (
	"time"
)

type Payment struct {
	ID          int64     `db:"id"`
	MemberID    int64     `db:"member_id"`
	AmountCents int64     `db:"amount_cents"`
	PaidOn      time.Time `db:"paid_on"`
	RecordedAt  time.Time `db:"recorded_at"`
}
