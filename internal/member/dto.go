// AngelaMos | 2026
// dto.go

package member

import (
	"time"

	"github.com/gympulse/gympulse/internal/billing"
)

type CreateMemberRequest struct {
	Name          string  `json:"name"           validate:"required,min=1,max=200"`
	Phone         *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	AdmissionDate string  `json:"admission_date" validate:"required"`
	PlanMonths    int     `json:"plan_months"    validate:"required,min=1,max=120"`
	FeeAmount     string  `json:"fee_amount"     validate:"required"`
}

type MemberResponse struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Phone         *string        `json:"phone,omitempty"`
	AdmissionDate string         `json:"admission_date"`
	PlanMonths    int            `json:"plan_months"`
	FeeAmount     string         `json:"fee_amount"`
	NextDueDate   string         `json:"next_due_date"`
	CreatedAt     time.Time      `json:"created_at"`
	Status        billing.Status `json:"status"`
}

type ListMembersParams struct {
	Page     int
	PageSize int
	Search   string
	Status   string
}

func (p *ListMembersParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
	if p.Status == "" {
		p.Status = FilterAll
	}
}

func (p *ListMembersParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

const dateLayout = "2006-01-02"

func ToMemberResponse(m *Member, today time.Time) MemberResponse {
	return MemberResponse{
		ID:            m.ID,
		Name:          m.Name,
		Phone:         m.Phone,
		AdmissionDate: m.AdmissionDate.Format(dateLayout),
		PlanMonths:    m.PlanMonths,
		FeeAmount:     billing.FormatCents(m.FeeCents),
		NextDueDate:   m.NextDueDate.Format(dateLayout),
		CreatedAt:     m.CreatedAt,
		Status:        billing.StatusFor(m.NextDueDate, today),
	}
}

func ToMemberResponseList(members []Member, today time.Time) []MemberResponse {
	responses := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, ToMemberResponse(&m, today))
	}
	return responses
}
