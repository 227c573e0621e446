// AngelaMos | 2026
// schema.go

package core

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Schema mirrors db/migrations/0001_init.sql. EnsureSchema lets the CLI
// bootstrap a fresh database without a separate migration step; every
// statement is idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS members (
    id             BIGSERIAL PRIMARY KEY,
    name           TEXT NOT NULL,
    phone          TEXT,
    admission_date DATE NOT NULL,
    plan_months    INT NOT NULL CHECK (plan_months >= 1),
    fee_cents      BIGINT NOT NULL CHECK (fee_cents >= 0),
    next_due_date  DATE NOT NULL,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS payments (
    id           BIGSERIAL PRIMARY KEY,
    member_id    BIGINT NOT NULL REFERENCES members(id) ON DELETE CASCADE,
    amount_cents BIGINT NOT NULL CHECK (amount_cents >= 0),
    paid_on      DATE NOT NULL,
    recorded_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_members_next_due_date ON members (next_due_date);
CREATE INDEX IF NOT EXISTS idx_payments_member_id ON payments (member_id);
`

func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
