// AngelaMos | 2026
// repository.go

package member

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gympulse/gympulse/internal/billing"
	"github.com/gympulse/gympulse/internal/core"
)

type Repository interface {
	Create(ctx context.Context, m *Member) error
	GetByID(ctx context.Context, id int64) (*Member, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*Member, error)
	UpdateNextDueDate(ctx context.Context, id int64, nextDue time.Time) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
	List(
		ctx context.Context,
		params ListMembersParams,
		today time.Time,
	) ([]Member, int, error)
	All(ctx context.Context) ([]Member, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const memberColumns = `id, name, phone, admission_date, plan_months,
	       fee_cents, next_due_date, created_at`

func (r *repository) Create(ctx context.Context, m *Member) error {
	query := `
		INSERT INTO members (name, phone, admission_date, plan_months,
		                     fee_cents, next_due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.GetContext(ctx, m, query,
		m.Name,
		m.Phone,
		m.AdmissionDate,
		m.PlanMonths,
		m.FeeCents,
		m.NextDueDate,
	)
	if err != nil {
		return fmt.Errorf("create member: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Member, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM members
		WHERE id = $1`, memberColumns)

	var m Member
	err := r.db.GetContext(ctx, &m, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get member: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}

	return &m, nil
}

// GetByIDForUpdate locks the member row for the duration of the
// surrounding transaction so the due-date read-modify-write in payment
// recording cannot lose an advance under concurrent callers.
func (r *repository) GetByIDForUpdate(
	ctx context.Context,
	id int64,
) (*Member, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM members
		WHERE id = $1
		FOR UPDATE`, memberColumns)

	var m Member
	err := r.db.GetContext(ctx, &m, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get member for update: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get member for update: %w", err)
	}

	return &m, nil
}

func (r *repository) UpdateNextDueDate(
	ctx context.Context,
	id int64,
	nextDue time.Time,
) error {
	query := `
		UPDATE members
		SET next_due_date = $2
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, nextDue)
	if err != nil {
		return fmt.Errorf("update next due date: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update next due date: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update next due date: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM members WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete member: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM members`)
	if err != nil {
		return 0, fmt.Errorf("count members: %w", err)
	}

	return count, nil
}

func (r *repository) List(
	ctx context.Context,
	params ListMembersParams,
	today time.Time,
) ([]Member, int, error) {
	params.Normalize()

	var conditions []string
	var args []any
	argIdx := 1

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR phone ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+escapeLike(params.Search)+"%")
		argIdx++
	}

	switch params.Status {
	case FilterOverdue:
		conditions = append(conditions,
			fmt.Sprintf("next_due_date < $%d", argIdx))
		args = append(args, today)
		argIdx++
	case FilterDueSoon:
		conditions = append(conditions, fmt.Sprintf(
			"next_due_date >= $%d AND next_due_date <= $%d",
			argIdx, argIdx+1))
		args = append(args, today, today.AddDate(0, 0, billing.DueSoonWindowDays))
		argIdx += 2
	}

	whereClause := "TRUE"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf(
		"SELECT COUNT(*) FROM members WHERE %s",
		whereClause,
	)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count members: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM members
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		memberColumns, whereClause, argIdx, argIdx+1)

	args = append(args, params.PageSize, params.Offset())

	var members []Member
	if err := r.db.SelectContext(ctx, &members, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list members: %w", err)
	}

	return members, total, nil
}

// All returns the full roster ordered by id ascending, the order the
// CSV export uses.
func (r *repository) All(ctx context.Context) ([]Member, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM members
		ORDER BY id ASC`, memberColumns)

	var members []Member
	if err := r.db.SelectContext(ctx, &members, query); err != nil {
		return nil, fmt.Errorf("list all members: %w", err)
	}

	return members, nil
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
