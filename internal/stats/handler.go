// AngelaMos | 2026
// handler.go

package stats

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gympulse/gympulse/internal/billing"
	"github.com/gympulse/gympulse/internal/core"
)

type Handler struct {
	repo Repository
	now  func() time.Time
}

func NewHandler(repo Repository) *Handler {
	return &Handler{
		repo: repo,
		now:  time.Now,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.With(authenticator).Get("/stats", h.GetSummary)
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	y, m, d := h.now().Date()
	today := billing.Date(y, m, d)

	summary, err := h.repo.Summarize(r.Context(), today)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, summary)
}
