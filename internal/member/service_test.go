// AngelaMos | 2026
// service_test.go

package member

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gympulse/gympulse/internal/billing"
	"github.com/gympulse/gympulse/internal/core"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestCreateMember(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewService(db, 5000)

	admission := billing.Date(2024, time.March, 15)
	createdAt := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec("LOCK TABLE members").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
	mock.ExpectQuery("INSERT INTO members").
		WithArgs("Ada", nil, admission, 1, int64(4990), billing.Date(2024, time.April, 15)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).
			AddRow(int64(7), createdAt))
	mock.ExpectCommit()

	m, err := svc.CreateMember(context.Background(), CreateMemberInput{
		Name:          "Ada",
		AdmissionDate: admission,
		PlanMonths:    1,
		FeeCents:      4990,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), m.ID)
	assert.Equal(t, billing.Date(2024, time.April, 15), m.NextDueDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMemberClampsDueDate(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewService(db, 5000)

	admission := billing.Date(2024, time.January, 31)

	mock.ExpectBegin()
	mock.ExpectExec("LOCK TABLE members").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("INSERT INTO members").
		WithArgs("Ada", nil, admission, 1, int64(5000), billing.Date(2024, time.February, 29)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).
			AddRow(int64(1), time.Now()))
	mock.ExpectCommit()

	m, err := svc.CreateMember(context.Background(), CreateMemberInput{
		Name:          "Ada",
		AdmissionDate: admission,
		PlanMonths:    1,
		FeeCents:      5000,
	})
	require.NoError(t, err)

	assert.Equal(t, billing.Date(2024, time.February, 29), m.NextDueDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMemberAtCapacity(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewService(db, 5000)

	mock.ExpectBegin()
	mock.ExpectExec("LOCK TABLE members").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5000))
	mock.ExpectRollback()

	_, err := svc.CreateMember(context.Background(), CreateMemberInput{
		Name:          "Ada",
		AdmissionDate: billing.Date(2024, time.March, 15),
		PlanMonths:    1,
		FeeCents:      4990,
	})
	require.ErrorIs(t, err, core.ErrCapacityExceeded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMemberLastSlot(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewService(db, 5000)

	mock.ExpectBegin()
	mock.ExpectExec("LOCK TABLE members").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4999))
	mock.ExpectQuery("INSERT INTO members").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).
			AddRow(int64(5000), time.Now()))
	mock.ExpectCommit()

	_, err := svc.CreateMember(context.Background(), CreateMemberInput{
		Name:          "Ada",
		AdmissionDate: billing.Date(2024, time.March, 15),
		PlanMonths:    1,
		FeeCents:      4990,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMemberRejectsInvalidInput(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewService(db, 5000)

	tests := []struct {
		name  string
		input CreateMemberInput
	}{
		{
			name: "empty name",
			input: CreateMemberInput{
				AdmissionDate: billing.Date(2024, time.March, 15),
				PlanMonths:    1,
			},
		},
		{
			name: "zero plan months",
			input: CreateMemberInput{
				Name:          "Ada",
				AdmissionDate: billing.Date(2024, time.March, 15),
				PlanMonths:    0,
			},
		},
		{
			name: "negative fee",
			input: CreateMemberInput{
				Name:          "Ada",
				AdmissionDate: billing.Date(2024, time.March, 15),
				PlanMonths:    1,
				FeeCents:      -1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateMember(context.Background(), tt.input)
			assert.ErrorIs(t, err, core.ErrInvalidInput)
		})
	}
}

func TestGetMemberNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewService(db, 5000)

	mock.ExpectQuery("SELECT (.+) FROM members").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.GetMember(context.Background(), 99)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestDeleteMemberNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewService(db, 5000)

	mock.ExpectExec("DELETE FROM members").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.DeleteMember(context.Background(), 99)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestDeleteMember(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewService(db, 5000)

	mock.ExpectExec("DELETE FROM members").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.DeleteMember(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}
