// AngelaMos | 2026
// csv_test.go

package member

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gympulse/gympulse/internal/billing"
)

func TestWriteCSV(t *testing.T) {
	phone := "555-0101"
	members := []Member{
		{
			ID:            1,
			Name:          "Ada Lovelace",
			Phone:         &phone,
			AdmissionDate: billing.Date(2024, time.January, 15),
			PlanMonths:    3,
			FeeCents:      12050,
			NextDueDate:   billing.Date(2024, time.April, 15),
			CreatedAt:     time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:            2,
			Name:          "Grace Hopper",
			AdmissionDate: billing.Date(2024, time.February, 1),
			PlanMonths:    1,
			FeeCents:      4900,
			NextDueDate:   billing.Date(2024, time.March, 1),
			CreatedAt:     time.Date(2024, time.February, 1, 14, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, members))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t,
		"id,name,phone,admission_date,plan_months,fee_amount,next_due_date,created_at",
		lines[0])
	assert.Equal(t,
		"1,Ada Lovelace,555-0101,2024-01-15,3,120.50,2024-04-15,2024-01-15T09:30:00Z",
		lines[1])
	assert.Equal(t,
		"2,Grace Hopper,,2024-02-01,1,49.00,2024-03-01,2024-02-01T14:00:00Z",
		lines[2])
}

func TestWriteCSVEmptyRoster(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	assert.Equal(t,
		"id,name,phone,admission_date,plan_months,fee_amount,next_due_date,created_at\n",
		buf.String())
}

func TestWriteCSVQuotesCommas(t *testing.T) {
	members := []Member{
		{
			ID:            1,
			Name:          "Lovelace, Ada",
			AdmissionDate: billing.Date(2024, time.January, 15),
			PlanMonths:    1,
			FeeCents:      4990,
			NextDueDate:   billing.Date(2024, time.February, 15),
			CreatedAt:     time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, members))

	assert.Contains(t, buf.String(), `"Lovelace, Ada"`)
}
