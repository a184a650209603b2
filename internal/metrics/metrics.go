// Package metrics implements handlers.Metrics with a Prometheus
// registry, exposed over HTTP via promhttp - the only metrics sink this
// server ships (handlers.NopMetrics remains the default when no metrics
// bind address is configured).
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Sink counts named events and observes named histograms, satisfying
// handlers.Metrics without handlers importing Prometheus directly.
type Sink struct {
	registry   *prometheus.Registry
	counters   *prometheus.CounterVec
	histograms *prometheus.HistogramVec
}

// New builds a Sink with its own registry, so a process embedding this
// server isn't forced onto the global Prometheus default registry.
func New() *Sink {
	reg := prometheus.NewRegistry()
	counters := promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Namespace: "limbo",
		Name:      "events_total",
		Help:      "Count of named server events (joins, kicks, handshakes).",
	}, []string{"event"})
	histograms := promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "limbo",
		Name:      "event_duration_seconds",
		Help:      "Observed durations for named server events.",
	}, []string{"event"})

	reg.MustRegister(prometheus.NewGoCollector())
	reg.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	return &Sink{registry: reg, counters: counters, histograms: histograms}
}

func (s *Sink) Inc(name string) {
	s.counters.WithLabelValues(name).Inc()
}

func (s *Sink) Observe(name string, value float64) {
	s.histograms.WithLabelValues(name).Observe(value)
}

// Handler returns the /metrics endpoint to mount on a listener separate
// from the game port.
func (s *Sink) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}
