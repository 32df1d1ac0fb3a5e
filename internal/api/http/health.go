package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brandkit-studio/brandkit-backend/internal/brandkit/service"
)

type HealthResponse struct {
	Status     string            `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Service    string            `json:"service"`
	Version    string            `json:"version"`
	Profile    string            `json:"profile,omitempty"`
	DB         string            `json:"db"`
	Generation *service.Snapshot `json:"generation,omitempty"`
}

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StatsSource reports generation counters; *service.BrandKitService satisfies it.
type StatsSource interface {
	Metrics() service.Snapshot
}

type HealthHandler struct {
	serviceName string
	version     string
	profile     string
	db          Pinger
	stats       StatsSource
}

// NewHealthHandler accepts nil db and stats; the response then reports db "disabled"
// and omits generation counters.
func NewHealthHandler(serviceName, version, profile string, db Pinger, stats StatsSource) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		profile:     profile,
		db:          db,
		stats:       stats,
	}
}

// Liveness answers the plain-text root probe.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.String(http.StatusOK, "Backend running")
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	dbStatus := "disabled"
	if h.db != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.db.Ping(pingCtx); err != nil {
			dbStatus = "down"
		} else {
			dbStatus = "up"
		}
	}

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Profile:   h.profile,
		DB:        dbStatus,
	}
	if dbStatus == "down" {
		resp.Status = "degraded"
	}
	if h.stats != nil {
		snap := h.stats.Metrics()
		resp.Generation = &snap
	}

	c.JSON(http.StatusOK, resp)
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Liveness)
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
