package handlers

// Metrics is the narrow interface handlers pokes on connect/disconnect/join
// events; the concrete sink (a no-op, or a Prometheus-backed one) lives
// outside this package so handlers never imports a metrics library
// directly. A nil Metrics never reaches a Session - NewDeps
// substitutes NopMetrics instead, so call sites never need a nil check.
type Metrics interface {
	Inc(name string)
	Observe(name string, value float64)
}

// NopMetrics discards every event; the default when a server runs with no
// metrics sink configured.
type NopMetrics struct{}

func (NopMetrics) Inc(string)            {}
func (NopMetrics) Observe(string, float64) {}
