// AngelaMos | 2026
// repository.go

package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gympulse/gympulse/internal/core"
)

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, id int64) (*Payment, error)
	ListByMember(ctx context.Context, memberID int64) ([]Payment, error)
	ListAll(ctx context.Context) ([]Payment, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Payment) error {
	query := `
		INSERT INTO payments (member_id, amount_cents, paid_on)
		VALUES ($1, $2, $3)
		RETURNING id, recorded_at`

	err := r.db.GetContext(ctx, p, query,
		p.MemberID,
		p.AmountCents,
		p.PaidOn,
	)
	if err != nil {
		return fmt.Errorf("create payment: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Payment, error) {
	query := `
		SELECT id, member_id, amount_cents, paid_on, recorded_at
		FROM payments
		WHERE id = $1`

	var p Payment
	err := r.db.GetContext(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get payment: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	return &p, nil
}

func (r *repository) ListByMember(
	ctx context.Context,
	memberID int64,
) ([]Payment, error) {
	query := `
		SELECT id, member_id, amount_cents, paid_on, recorded_at
		FROM payments
		WHERE member_id = $1
		ORDER BY paid_on DESC, id DESC`

	var payments []Payment
	err := r.db.SelectContext(ctx, &payments, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	return payments, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Payment, error) {
	query := `
		SELECT id, member_id, amount_cents, paid_on, recorded_at
		FROM payments
		ORDER BY paid_on DESC, id DESC`

	var payments []Payment
	err := r.db.SelectContext(ctx, &payments, query)
	if err != nil {
		return nil, fmt.Errorf("list all payments: %w", err)
	}

	return payments, nil
}
