package service

import "time"

// MetricsRecorder receives operational measurements from the use case layer.
// A nil error means success; otherwise the error's kind becomes the result label.
type MetricsRecorder interface {
	ObservePosition(err error)
	ObserveRouteSave(err error)
	ObserveRouteMetrics(err error, elapsed time.Duration)
}

// NopMetricsRecorder discards every measurement.
type NopMetricsRecorder struct{}

func (NopMetricsRecorder) ObservePosition(error)                    {}
func (NopMetricsRecorder) ObserveRouteSave(error)                   {}
func (NopMetricsRecorder) ObserveRouteMetrics(error, time.Duration) {}
