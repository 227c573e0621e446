// AngelaMos | 2026
// service_test.go

package payment

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

func memberRow(id int64, planMonths int, nextDue time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "phone", "admission_date", "plan_months",
		"fee_cents", "next_due_date", "created_at",
	}).AddRow(
		id, "Ada", nil, billing.Date(2024, time.January, 15),
		planMonths, int64(4990), nextDue, time.Now(),
	)
}

func TestRecordPaymentAdvancesDueDate(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewService(db)

	paidOn := billing.Date(2024, time.March, 20)
	currentDue := billing.Date(2024, time.March, 15)
	wantDue := billing.Date(2024, time.April, 15)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM members (.+) FOR UPDATE").
		WithArgs(int64(7)).
		WillReturnRows(memberRow(7, 1, currentDue))
	mock.ExpectQuery("INSERT INTO payments").
		WithArgs(int64(7), int64(4990), paidOn).
		WillReturnRows(sqlmock.NewRows([]string{"id", "recorded_at"}).
			AddRow(int64(3), time.Now()))
	mock.ExpectExec("UPDATE members").
		WithArgs(int64(7), wantDue).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	p, nextDue, err := svc.RecordPayment(context.Background(), 7, 4990, paidOn)
	require.NoError(t, err)

	assert.Equal(t, int64(3), p.ID)
	assert.Equal(t, wantDue, nextDue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The next due date advances from the member's current due date, not
// from the payment date, so a late payment does not shift the cycle.
func TestRecordPaymentAdvancesFromDueDateNotPaymentDate(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewService(db)

	paidOn := billing.Date(2024, time.May, 2)
	currentDue := billing.Date(2024, time.March, 15)
	wantDue := billing.Date(2024, time.April, 15)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM members (.+) FOR UPDATE").
		WithArgs(int64(7)).
		WillReturnRows(memberRow(7, 1, currentDue))
	mock.ExpectQuery("INSERT INTO payments").
		WillReturnRows(sqlmock.NewRows([]string{"id", "recorded_at"}).
			AddRow(int64(4), time.Now()))
	mock.ExpectExec("UPDATE members").
		WithArgs(int64(7), wantDue).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, nextDue, err := svc.RecordPayment(context.Background(), 7, 4990, paidOn)
	require.NoError(t, err)

	assert.Equal(t, wantDue, nextDue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPaymentClampsDueDate(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewService(db)

	currentDue := billing.Date(2024, time.January, 31)
	wantDue := billing.Date(2024, time.February, 29)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM members (.+) FOR UPDATE").
		WithArgs(int64(7)).
		WillReturnRows(memberRow(7, 1, currentDue))
	mock.ExpectQuery("INSERT INTO payments").
		WillReturnRows(sqlmock.NewRows([]string{"id", "recorded_at"}).
			AddRow(int64(5), time.Now()))
	mock.ExpectExec("UPDATE members").
		WithArgs(int64(7), wantDue).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, nextDue, err := svc.RecordPayment(
		context.Background(), 7, 4990, billing.Date(2024, time.January, 31))
	require.NoError(t, err)

	assert.Equal(t, wantDue, nextDue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPaymentMemberNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM members (.+) FOR UPDATE").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, _, err := svc.RecordPayment(
		context.Background(), 99, 4990, billing.Date(2024, time.March, 20))
	require.ErrorIs(t, err, core.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPaymentRejectsNegativeAmount(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewService(db)

	_, _, err := svc.RecordPayment(
		context.Background(), 7, -100, billing.Date(2024, time.March, 20))
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

// Without a member filter the listing spans every member, newest
// payment first.
func TestListAllPayments(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewService(db)

	rows := sqlmock.NewRows([]string{
		"id", "member_id", "amount_cents", "paid_on", "recorded_at",
	}).AddRow(
		int64(3), int64(2), int64(5000),
		billing.Date(2024, time.March, 20), time.Now(),
	).AddRow(
		int64(1), int64(7), int64(4990),
		billing.Date(2024, time.February, 15), time.Now(),
	)

	mock.ExpectQuery("SELECT (.+) FROM payments ORDER BY paid_on DESC, id DESC").
		WillReturnRows(rows)

	list, err := svc.ListAllPayments(context.Background())
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].MemberID)
	assert.Equal(t, int64(7), list[1].MemberID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPaymentRollsBackOnUpdateFailure(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM members (.+) FOR UPDATE").
		WithArgs(int64(7)).
		WillReturnRows(memberRow(7, 1, billing.Date(2024, time.March, 15)))
	mock.ExpectQuery("INSERT INTO payments").
		WillReturnRows(sqlmock.NewRows([]string{"id", "recorded_at"}).
			AddRow(int64(6), time.Now()))
	mock.ExpectExec("UPDATE members").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, _, err := svc.RecordPayment(
		context.Background(), 7, 4990, billing.Date(2024, time.March, 20))
	require.ErrorIs(t, err, core.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
