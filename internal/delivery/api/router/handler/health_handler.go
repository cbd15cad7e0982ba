package handler

import (
	"context"
	"net/http"
	"time"

	"arena/internal/delivery/api/response"
	"arena/internal/domain/repository"
	"arena/internal/errors"

	"github.com/labstack/echo/v4"
)

const healthPingTimeout = 2 * time.Second

// HealthHandler reports service and database liveness.
type HealthHandler struct {
	db repository.HealthChecker
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(db repository.HealthChecker) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check pings the database.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable").SetInternal(errors.WithStack(err))
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok", "database": "ok"})
}
