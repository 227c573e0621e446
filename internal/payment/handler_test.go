// AngelaMos | 2026
// handler_test.go

package payment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gympulse/gympulse/internal/billing"
	"github.com/gympulse/gympulse/internal/member"
)

func passthroughAuth(next http.Handler) http.Handler {
	return next
}

func newTestHandler(t *testing.T) (sqlmock.Sqlmock, *chi.Mux) {
	t.Helper()

	db, mock := newMockDB(t)
	h := NewHandler(NewService(db), member.NewService(db, 5000))
	h.now = func() time.Time {
		return time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	}

	r := chi.NewRouter()
	h.RegisterRoutes(r, passthroughAuth)

	return mock, r
}

func TestHandlerRecordPayment(t *testing.T) {
	mock, r := newTestHandler(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM members (.+) FOR UPDATE").
		WithArgs(int64(7)).
		WillReturnRows(memberRow(7, 1, billing.Date(2024, time.March, 15)))
	mock.ExpectQuery("INSERT INTO payments").
		WithArgs(int64(7), int64(5000), billing.Date(2024, time.March, 20)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "recorded_at"}).
			AddRow(int64(3), time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)))
	mock.ExpectExec("UPDATE members").
		WithArgs(int64(7), billing.Date(2024, time.April, 15)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body := `{"amount": "50.00", "paid_on": "2024-03-20"}`
	req := httptest.NewRequest(
		http.MethodPost, "/members/7/payments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool            `json:"success"`
		Data    PaymentResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "50.00", resp.Data.Amount)
	assert.Equal(t, "2024-03-20", resp.Data.PaidOn)
	assert.Equal(t, "2024-04-15", resp.Data.NextDueDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A body with no amount falls back to the member's plan fee, and a
// missing paid_on to today.
func TestHandlerRecordPaymentDefaults(t *testing.T) {
	mock, r := newTestHandler(t)

	mock.ExpectQuery("SELECT (.+) FROM members").
		WithArgs(int64(7)).
		WillReturnRows(memberRow(7, 1, billing.Date(2024, time.March, 15)))

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM members (.+) FOR UPDATE").
		WithArgs(int64(7)).
		WillReturnRows(memberRow(7, 1, billing.Date(2024, time.March, 15)))
	mock.ExpectQuery("INSERT INTO payments").
		WithArgs(int64(7), int64(4990), billing.Date(2024, time.March, 20)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "recorded_at"}).
			AddRow(int64(4), time.Now()))
	mock.ExpectExec("UPDATE members").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest(
		http.MethodPost, "/members/7/payments", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data PaymentResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "49.90", resp.Data.Amount)
	assert.Equal(t, "2024-03-20", resp.Data.PaidOn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandlerRecordPaymentMemberNotFound(t *testing.T) {
	mock, r := newTestHandler(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM members (.+) FOR UPDATE").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	body := `{"amount": "50.00"}`
	req := httptest.NewRequest(
		http.MethodPost, "/members/99/payments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerRecordPaymentInvalidAmount(t *testing.T) {
	_, r := newTestHandler(t)

	body := `{"amount": "12.345"}`
	req := httptest.NewRequest(
		http.MethodPost, "/members/7/payments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerListPayments(t *testing.T) {
	mock, r := newTestHandler(t)

	mock.ExpectQuery("SELECT (.+) FROM members").
		WithArgs(int64(7)).
		WillReturnRows(memberRow(7, 1, billing.Date(2024, time.March, 15)))

	rows := sqlmock.NewRows([]string{
		"id", "member_id", "amount_cents", "paid_on", "recorded_at",
	}).AddRow(
		int64(2), int64(7), int64(4990),
		billing.Date(2024, time.March, 15), time.Now(),
	).AddRow(
		int64(1), int64(7), int64(4990),
		billing.Date(2024, time.February, 15), time.Now(),
	)
	mock.ExpectQuery("SELECT (.+) FROM payments").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	req := httptest.NewRequest(http.MethodGet, "/members/7/payments", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []PaymentResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, int64(2), resp.Data[0].ID)
	assert.Empty(t, resp.Data[0].NextDueDate)
}

func TestHandlerGetPaymentNotFound(t *testing.T) {
	mock, r := newTestHandler(t)

	mock.ExpectQuery("SELECT (.+) FROM payments").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req := httptest.NewRequest(http.MethodGet, "/payments/42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
