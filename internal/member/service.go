// AngelaMos | 2026
// service.go

package member

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gympulse/gympulse/internal/billing"
	"github.com/gympulse/gympulse/internal/core"
)

type Service struct {
	db         *sqlx.DB
	repo       Repository
	maxMembers int
}

func NewService(db *sqlx.DB, maxMembers int) *Service {
	return &Service{
		db:         db,
		repo:       NewRepository(db),
		maxMembers: maxMembers,
	}
}

// MaxMembers is the roster ceiling this service enforces.
func (s *Service) MaxMembers() int {
	return s.maxMembers
}

type CreateMemberInput struct {
	Name          string
	Phone         *string
	AdmissionDate time.Time
	PlanMonths    int
	FeeCents      int64
}

// CreateMember computes the initial due date and inserts the member.
// The count check and the insert share one transaction with a table
// lock, so two concurrent creates cannot both pass the ceiling check.
func (s *Service) CreateMember(
	ctx context.Context,
	input CreateMemberInput,
) (*Member, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("create member: empty name: %w", core.ErrInvalidInput)
	}
	if input.PlanMonths < 1 {
		return nil, fmt.Errorf(
			"create member: plan months %d must be at least 1: %w",
			input.PlanMonths,
			core.ErrInvalidInput,
		)
	}
	if input.FeeCents < 0 {
		return nil, fmt.Errorf(
			"create member: negative fee: %w",
			core.ErrInvalidInput,
		)
	}

	nextDue, err := billing.AddMonths(input.AdmissionDate, input.PlanMonths)
	if err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}

	m := &Member{
		Name:          input.Name,
		Phone:         input.Phone,
		AdmissionDate: input.AdmissionDate,
		PlanMonths:    input.PlanMonths,
		FeeCents:      input.FeeCents,
		NextDueDate:   nextDue,
	}

	err = core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		repo := NewRepository(tx)

		// Serializes concurrent creates against the ceiling check.
		if _, lockErr := tx.ExecContext(ctx,
			`LOCK TABLE members IN SHARE ROW EXCLUSIVE MODE`,
		); lockErr != nil {
			return fmt.Errorf("lock members: %w", lockErr)
		}

		count, countErr := repo.Count(ctx)
		if countErr != nil {
			return countErr
		}

		if count >= s.maxMembers {
			return fmt.Errorf(
				"create member: limit of %d reached: %w",
				s.maxMembers,
				core.ErrCapacityExceeded,
			)
		}

		return repo.Create(ctx, m)
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (s *Service) GetMember(ctx context.Context, id int64) (*Member, error) {
	return s.repo.GetByID(ctx, id)
}

// DeleteMember removes the member; the payments cascade is enforced by
// the schema's foreign key, so a single statement stays atomic.
func (s *Service) DeleteMember(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListMembers(
	ctx context.Context,
	params ListMembersParams,
	today time.Time,
) ([]Member, int, error) {
	return s.repo.List(ctx, params, today)
}

func (s *Service) CountMembers(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *Service) AllMembers(ctx context.Context) ([]Member, error) {
	return s.repo.All(ctx)
}
