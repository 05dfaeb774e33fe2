// Package telemetry provides opt-in, low-overhead Prometheus metrics for the
// routing driver. When no MetricsAddr is configured, Serve starts no HTTP
// server; the recording functions still update the in-process metrics,
// which costs only a few atomic operations per call.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	intervalsCompleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rapidgo_forcing_intervals_completed_total",
		Help: "Total number of forcing intervals routed to completion",
	})
	subStepsRun = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rapidgo_routing_substeps_total",
		Help: "Total number of Muskingum routing sub-steps executed",
	})
	intervalDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "rapidgo_forcing_interval_seconds",
		Help:    "Wall-clock duration of routing one forcing interval",
		Buckets: prometheus.DefBuckets,
	})
	subBasinSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "rapidgo_subbasin_reaches",
		Help: "Number of reaches in the currently loaded sub-basin",
	})
)

func init() {
	prometheus.MustRegister(intervalsCompleted, subStepsRun, intervalDuration, subBasinSize)
}

// Serve starts a dedicated /metrics HTTP server in the background if addr is
// non-empty. Safe to call with an empty addr (no-op).
func Serve(addr string) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		_ = server.ListenAndServe()
	}()
}

// SetSubBasinSize records the number of reaches in the active sub-basin.
func SetSubBasinSize(n int) {
	subBasinSize.Set(float64(n))
}

// ObserveInterval records one completed forcing interval and its duration.
func ObserveInterval(d time.Duration, subSteps int) {
	intervalsCompleted.Inc()
	subStepsRun.Add(float64(subSteps))
	intervalDuration.Observe(d.Seconds())
}
