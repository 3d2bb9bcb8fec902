package http

import (
	"context"
	"log/slog"
	"net/http"

	"tracker/config"
	"tracker/internal/delivery"
	trackermiddleware "tracker/internal/delivery/http/middleware"
	"tracker/internal/delivery/http/router"
	"tracker/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// httpServer exposes the operational endpoints (health, Prometheus metrics)
type httpServer struct {
	addr   string
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Use(middleware.Recover())
	echoServer.Use(trackermiddleware.NewAccessLogMiddleware(params.Logger).Handle)

	router := router.NewRouter(params.RouterParams)
	router.RegisterRoutes(echoServer, params.Config.Metrics.Enabled)

	delivery := &httpServer{
		addr:   params.Config.Metrics.Addr,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting operations HTTP server", slog.String("addr", s.addr))
	if err := s.server.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down operations HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
