// Package router registers the operational HTTP endpoints.
package router

import (
	"tracker/internal/delivery/http/router/handler"
	"tracker/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler *handler.HealthHandler
	Collector     *metrics.Collector
}

type router struct {
	healthHandler *handler.HealthHandler
	collector     *metrics.Collector
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler: params.HealthHandler,
		collector:     params.Collector,
	}
}

// RegisterRoutes sets up the health check and, when enabled, the Prometheus endpoint.
func (r *router) RegisterRoutes(e *echo.Echo, metricsEnabled bool) {
	e.GET("/health", r.healthHandler.HealthCheck)

	if metricsEnabled {
		e.GET("/metrics", echo.WrapHandler(r.collector.Handler()))
	}
}
