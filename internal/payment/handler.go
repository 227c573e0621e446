// AngelaMos | 2026
// handler.go

package payment

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gympulse/gympulse/internal/billing"
	"github.com/gympulse/gympulse/internal/core"
	"github.com/gympulse/gympulse/internal/member"
)

type Handler struct {
	service *Service
	members *member.Service
	now     func() time.Time
}

func NewHandler(service *Service, members *member.Service) *Handler {
	return &Handler{
		service: service,
		members: members,
		now:     time.Now,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/members/{memberID}/payments", h.RecordPayment)
		r.Get("/members/{memberID}/payments", h.ListPayments)
		r.Get("/payments/{paymentID}", h.GetPayment)
	})
}

func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	memberID, err := parseID(r, "memberID")
	if err != nil {
		core.BadRequest(w, "invalid member id")
		return
	}

	var req RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	// Defaults mirror the dashboard payment form: amount falls back to
	// the member's plan fee, paid-on to today.
	var amountCents int64
	if req.Amount != nil {
		amountCents, err = billing.ParseCents(*req.Amount)
		if err != nil {
			core.BadRequest(w, fmt.Sprintf("invalid amount %q", *req.Amount))
			return
		}
	} else {
		m, getErr := h.members.GetMember(r.Context(), memberID)
		if getErr != nil {
			if errors.Is(getErr, core.ErrNotFound) {
				core.NotFound(w, "member")
				return
			}
			core.InternalServerError(w, getErr)
			return
		}
		amountCents = m.FeeCents
	}

	paidOn := h.today()
	if req.PaidOn != nil {
		paidOn, err = time.Parse(dateLayout, *req.PaidOn)
		if err != nil {
			core.BadRequest(w, fmt.Sprintf(
				"invalid paid_on %q, expect %s",
				*req.PaidOn,
				dateLayout,
			))
			return
		}
	}

	p, nextDue, err := h.service.RecordPayment(
		r.Context(),
		memberID,
		amountCents,
		paidOn,
	)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "member")
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "invalid payment attributes")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.Created(w, ToPaymentResponse(p, nextDue))
}

func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	memberID, err := parseID(r, "memberID")
	if err != nil {
		core.BadRequest(w, "invalid member id")
		return
	}

	if _, err := h.members.GetMember(r.Context(), memberID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "member")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	payments, err := h.service.ListPayments(r.Context(), memberID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPaymentResponseList(payments))
}

func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "paymentID")
	if err != nil {
		core.BadRequest(w, "invalid payment id")
		return
	}

	p, err := h.service.GetPayment(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "payment")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPaymentResponse(p, time.Time{}))
}

func (h *Handler) today() time.Time {
	y, m, d := h.now().Date()
	return billing.Date(y, m, d)
}

func parseID(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, key), 10, 64)
}
