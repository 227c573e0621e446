// AngelaMos | 2026
// stats.go

package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/gympulse/gympulse/internal/billing"
	"github.com/gympulse/gympulse/internal/core"
)

// Summary backs the dashboard header counters.
type Summary struct {
	TotalMembers int `db:"total"    json:"total_members"`
	Overdue      int `db:"overdue"  json:"overdue"`
	DueSoon      int `db:"due_soon" json:"due_soon"`
}

type Repository interface {
	Summarize(ctx context.Context, today time.Time) (*Summary, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Summarize(
	ctx context.Context,
	today time.Time,
) (*Summary, error) {
	query := `
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE next_due_date < $1) AS overdue,
		       COUNT(*) FILTER (
		           WHERE next_due_date >= $1 AND next_due_date <= $2
		       ) AS due_soon
		FROM members`

	var s Summary
	err := r.db.GetContext(ctx, &s, query,
		today,
		today.AddDate(0, 0, billing.DueSoonWindowDays),
	)
	if err != nil {
		return nil, fmt.Errorf("summarize members: %w", err)
	}

	return &s, nil
}
