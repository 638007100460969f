package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"outlaw/internal/logging"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

// PingContext calls f.
func (f PingFunc) PingContext(ctx context.Context) error { return f(ctx) }

// HealthHandler answers liveness and readiness probes.
type HealthHandler struct {
	database Pinger
	cache    Pinger
}

// NewHealthHandler creates a new health handler. A nil cache is reported as disabled.
func NewHealthHandler(database, cache Pinger) *HealthHandler {
	return &HealthHandler{database: database, cache: cache}
}

// HealthResponse reports dependency status.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// Root godoc
// @Summary Liveness
// @Tags health
// @Produce plain
// @Success 200 {string} string "API is running..."
// @Router / [get]
func (h *HealthHandler) Root(c echo.Context) error {
	return c.String(http.StatusOK, "API is running...")
}

// Health godoc
// @Summary Readiness
// @Description The database is required; the cache is optional and never fails the probe.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Health(c echo.Context) error {
	ctx := c.Request().Context()
	res := HealthResponse{Status: "ok", Database: "up", Cache: "disabled"}
	status := http.StatusOK

	if err := h.database.PingContext(ctx); err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("database ping failed")
		res.Status, res.Database = "unavailable", "down"
		status = http.StatusServiceUnavailable
	}
	if h.cache != nil {
		res.Cache = "up"
		if err := h.cache.PingContext(ctx); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("cache ping failed")
			res.Cache = "down"
		}
	}

	return c.JSON(status, res)
}
