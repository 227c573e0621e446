// AngelaMos | 2026
// service.go

package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gympulse/gympulse/internal/billing"
	"github.com/gympulse/gympulse/internal/core"
	"github.com/gympulse/gympulse/internal/member"
)

type Service struct {
	db   *sqlx.DB
	repo Repository
}

func NewService(db *sqlx.DB) *Service {
	return &Service{
		db:   db,
		repo: NewRepository(db),
	}
}

// RecordPayment inserts the payment and advances the member's due date
// in one transaction. The advance starts from the member's current due
// date, not from the paid-on date, so early or late payments never
// shift the cycle anchor. The member row is locked for the duration to
// keep two concurrent payments from reading the same stale due date.
func (s *Service) RecordPayment(
	ctx context.Context,
	memberID int64,
	amountCents int64,
	paidOn time.Time,
) (*Payment, time.Time, error) {
	if amountCents < 0 {
		return nil, time.Time{}, fmt.Errorf(
			"record payment: negative amount: %w",
			core.ErrInvalidInput,
		)
	}

	p := &Payment{
		MemberID:    memberID,
		AmountCents: amountCents,
		PaidOn:      paidOn,
	}

	var nextDue time.Time

	err := core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		members := member.NewRepository(tx)
		payments := NewRepository(tx)

		m, err := members.GetByIDForUpdate(ctx, memberID)
		if err != nil {
			return err
		}

		nextDue, err = billing.AddMonths(m.NextDueDate, m.PlanMonths)
		if err != nil {
			return fmt.Errorf("record payment: %w", err)
		}

		if err := payments.Create(ctx, p); err != nil {
			return err
		}

		return members.UpdateNextDueDate(ctx, memberID, nextDue)
	})
	if err != nil {
		return nil, time.Time{}, err
	}

	return p, nextDue, nil
}

func (s *Service) GetPayment(ctx context.Context, id int64) (*Payment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListPayments(
	ctx context.Context,
	memberID int64,
) ([]Payment, error) {
	return s.repo.ListByMember(ctx, memberID)
}

func (s *Service) ListAllPayments(ctx context.Context) ([]Payment, error) {
	return s.repo.ListAll(ctx)
}
