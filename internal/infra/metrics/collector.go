package metrics

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"tracker/config"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const resultOK = "ok"

// Collector owns a private registry so /metrics only exposes tracker series.
type Collector struct {
	reg *prometheus.Registry

	Positions     *prometheus.CounterVec // result label: ok|bad_request|internal_error
	RouteSaves    *prometheus.CounterVec
	RouteMetrics  *prometheus.CounterVec
	RouteDuration prometheus.Histogram
}

var _ service.MetricsRecorder = (*Collector)(nil)

// CollectorParams holds dependencies for Collector, injected by Fx
type CollectorParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewCollector creates the collector under the configured namespace
func NewCollector(params CollectorParams) *Collector {
	namespace := params.Config.Metrics.Namespace
	c := newCollector(namespace)

	params.Logger.Debug("Metrics collector created", slog.String("namespace", namespace))

	return c
}

func newCollector(namespace string) *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		Positions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "positions_total",
			Help:      "Position reports processed, by result.",
		}, []string{"result"}),
		RouteSaves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_saves_total",
			Help:      "Route create or update requests, by result.",
		}, []string{"result"}),
		RouteMetrics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_metrics_total",
			Help:      "Route metrics computations, by result.",
		}, []string{"result"}),
		RouteDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "route_metrics_duration_seconds",
			Help:      "Duration of route metrics computations.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 15),
		}),
	}

	reg.MustRegister(c.Positions, c.RouteSaves, c.RouteMetrics, c.RouteDuration)

	return c
}

// ObservePosition counts one position report
func (c *Collector) ObservePosition(err error) {
	c.Positions.WithLabelValues(resultLabel(err)).Inc()
}

// ObserveRouteSave counts one route save
func (c *Collector) ObserveRouteSave(err error) {
	c.RouteSaves.WithLabelValues(resultLabel(err)).Inc()
}

// ObserveRouteMetrics counts one metrics computation and records its duration
func (c *Collector) ObserveRouteMetrics(err error, elapsed time.Duration) {
	c.RouteMetrics.WithLabelValues(resultLabel(err)).Inc()
	c.RouteDuration.Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

func resultLabel(err error) string {
	if err == nil {
		return resultOK
	}

	return strings.ToLower(string(domainerrors.KindOf(err)))
}
