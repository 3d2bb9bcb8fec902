package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// Pinger reports whether the database is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingFunc adapts a function to Pinger
type PingFunc func(ctx context.Context) error

func (f PingFunc) PingContext(ctx context.Context) error {
	return f(ctx)
}

// HealthHandler serves the liveness and database readiness check
type HealthHandler struct {
	logger *slog.Logger
	db     Pinger
}

// HealthHandlerParams holds dependencies for the HealthHandler
type HealthHandlerParams struct {
	fx.In

	Logger *slog.Logger
	DB     *gorm.DB
}

// NewHealthHandler creates a health handler backed by the gorm connection pool
func NewHealthHandler(params HealthHandlerParams) (*HealthHandler, error) {
	sqlDB, err := params.DB.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB for health check")
	}

	return NewHealthHandlerWithPinger(params.Logger, sqlDB), nil
}

// NewHealthHandlerWithPinger creates a health handler over any Pinger
func NewHealthHandlerWithPinger(logger *slog.Logger, db Pinger) *HealthHandler {
	return &HealthHandler{logger: logger, db: db}
}

// HealthCheck returns 200 when the database answers a ping, 503 otherwise
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("Health check failed", slog.Any("error", err))

		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "database": "down"})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok", "database": "up"})
}
