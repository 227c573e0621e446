// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"database/sql"
	"net/http"
	"runtime"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/gympulse/gympulse/internal/core"
)

type HandlerConfig struct {
	DBStats    func() sql.DBStats
	RedisStats func() *redis.PoolStats
	DBPing     func(ctx context.Context) error
	RedisPing  func(ctx context.Context) error
}

type Handler struct {
	cfg HandlerConfig
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{cfg: cfg}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/system", h.SystemInfo)
	})
}

type systemInfo struct {
	Database  databaseInfo `json:"database"`
	Redis     redisInfo    `json:"redis"`
	Runtime   runtimeInfo  `json:"runtime"`
	DBHealthy bool         `json:"db_healthy"`
}

type databaseInfo struct {
	OpenConnections int `json:"open_connections"`
	InUse           int `json:"in_use"`
	Idle            int `json:"idle"`
	WaitCount       int `json:"wait_count"`
}

type redisInfo struct {
	TotalConns uint32 `json:"total_conns"`
	IdleConns  uint32 `json:"idle_conns"`
	Hits       uint32 `json:"hits"`
	Misses     uint32 `json:"misses"`
}

type runtimeInfo struct {
	Goroutines int    `json:"goroutines"`
	GoVersion  string `json:"go_version"`
}

func (h *Handler) SystemInfo(w http.ResponseWriter, r *http.Request) {
	dbStats := h.cfg.DBStats()
	redisStats := h.cfg.RedisStats()

	info := systemInfo{
		Database: databaseInfo{
			OpenConnections: dbStats.OpenConnections,
			InUse:           dbStats.InUse,
			Idle:            dbStats.Idle,
			WaitCount:       int(dbStats.WaitCount),
		},
		Redis: redisInfo{
			TotalConns: redisStats.TotalConns,
			IdleConns:  redisStats.IdleConns,
			Hits:       redisStats.Hits,
			Misses:     redisStats.Misses,
		},
		Runtime: runtimeInfo{
			Goroutines: runtime.NumGoroutine(),
			GoVersion:  runtime.Version(),
		},
		DBHealthy: h.cfg.DBPing(r.Context()) == nil,
	}

	core.OK(w, info)
}
