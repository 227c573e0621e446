// AngelaMos | 2026
// handler.go

package member

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/gympulse/gympulse/internal/billing"
	"github.com/gympulse/gympulse/internal/core"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
	now       func() time.Time
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		now:       time.Now,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/members", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.ListMembers)
		r.Post("/", h.CreateMember)
		r.Get("/export.csv", h.ExportCSV)
		r.Get("/{memberID}", h.GetMember)
		r.Delete("/{memberID}", h.DeleteMember)
	})
}

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	params := ListMembersParams{
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "page_size", 20),
		Search:   r.URL.Query().Get("search"),
		Status:   r.URL.Query().Get("status"),
	}
	params.Normalize()

	if params.Status != FilterAll &&
		params.Status != FilterOverdue &&
		params.Status != FilterDueSoon {
		core.BadRequest(w, fmt.Sprintf("unknown status filter %q", params.Status))
		return
	}

	today := h.today()

	members, total, err := h.service.ListMembers(r.Context(), params, today)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Paginated(
		w,
		ToMemberResponseList(members, today),
		params.Page,
		params.PageSize,
		total,
	)
}

func (h *Handler) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	admission, err := time.Parse(dateLayout, req.AdmissionDate)
	if err != nil {
		core.BadRequest(w, fmt.Sprintf(
			"invalid admission_date %q, expect %s",
			req.AdmissionDate,
			dateLayout,
		))
		return
	}

	feeCents, err := billing.ParseCents(req.FeeAmount)
	if err != nil {
		core.BadRequest(w, fmt.Sprintf("invalid fee_amount %q", req.FeeAmount))
		return
	}

	m, err := h.service.CreateMember(r.Context(), CreateMemberInput{
		Name:          req.Name,
		Phone:         req.Phone,
		AdmissionDate: admission,
		PlanMonths:    req.PlanMonths,
		FeeCents:      feeCents,
	})
	if err != nil {
		switch {
		case errors.Is(err, core.ErrCapacityExceeded):
			core.JSONError(w, core.CapacityError(h.service.MaxMembers()))
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "invalid member attributes")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.Created(w, ToMemberResponse(m, h.today()))
}

func (h *Handler) GetMember(w http.ResponseWriter, r *http.Request) {
	id, err := parseMemberID(r)
	if err != nil {
		core.BadRequest(w, "invalid member id")
		return
	}

	m, err := h.service.GetMember(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "member")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToMemberResponse(m, h.today()))
}

func (h *Handler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	id, err := parseMemberID(r)
	if err != nil {
		core.BadRequest(w, "invalid member id")
		return
	}

	if err := h.service.DeleteMember(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "member")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.AllMembers(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set(
		"Content-Disposition",
		`attachment; filename="members.csv"`,
	)

	if err := WriteCSV(w, members); err != nil {
		// Headers are already out; the truncated body is all we can signal.
		core.SetSpanError(r.Context(), err)
	}
}

func (h *Handler) today() time.Time {
	y, m, d := h.now().Date()
	return billing.Date(y, m, d)
}

func parseMemberID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "memberID"), 10, 64)
}

func parseIntQuery(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return parsed
}
