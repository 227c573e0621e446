// AngelaMos | 2026
// dto.go

package payment

import (
	"time"

	"github.com/gympulse/gympulse/internal/billing"
)

type RecordPaymentRequest struct {
	// Both fields are optional at the API: a missing amount defaults to
	// the member's plan fee, a missing date to today.
	Amount *string `json:"amount,omitempty"`
	PaidOn *string `json:"paid_on,omitempty"`
}

type PaymentResponse struct {
	ID          int64     `json:"id"`
	MemberID    int64     `json:"member_id"`
	Amount      string    `json:"amount"`
	PaidOn      string    `json:"paid_on"`
	RecordedAt  time.Time `json:"recorded_at"`
	NextDueDate string    `json:"next_due_date,omitempty"`
}

const dateLayout = "2006-01-02"

func ToPaymentResponse(p *Payment, nextDue time.Time) PaymentResponse {
	resp := PaymentResponse{
		ID:         p.ID,
		MemberID:   p.MemberID,
		Amount:     billing.FormatCents(p.AmountCents),
		PaidOn:     p.PaidOn.Format(dateLayout),
		RecordedAt: p.RecordedAt,
	}
	if !nextDue.IsZero() {
		resp.NextDueDate = nextDue.Format(dateLayout)
	}
	return resp
}

func ToPaymentResponseList(payments []Payment) []PaymentResponse {
	responses := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, ToPaymentResponse(&payments[i], time.Time{}))
	}
	return responses
}
