// AngelaMos | 2026
// handler.go

package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/gympulse/gympulse/internal/config"
	"github.com/gympulse/gympulse/internal/core"
)

type Handler struct {
	service   *Service
	jwtCfg    config.JWTConfig
	validator *validator.Validate
}

func NewHandler(service *Service, jwtCfg config.JWTConfig) *Handler {
	return &Handler{
		service:   service,
		jwtCfg:    jwtCfg,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.Login)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, core.ErrUnauthorized) {
			core.Unauthorized(w, "invalid username or password")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(h.jwtCfg.AccessTokenExpire.Seconds()),
	})
}
