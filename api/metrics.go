package api

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/warp/rescisao/rescisao"
)

// Calculation results used as the "resultado" label.
const (
	resultSuccess  = "sucesso"
	resultInvalid  = "entrada_invalida"
	resultRejected = "sem_dados"
)

// Metrics holds the Prometheus collectors of the API.
type Metrics struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	duration     prometheus.Histogram
}

// NewMetrics registers the collectors on a fresh registry, together with the
// Go runtime and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rescisao",
			Name:      "calculations_total",
			Help:      "Settlement calculations by termination reason and result.",
		}, []string{"motivo", "resultado"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "rescisao",
			Name:      "calculation_duration_seconds",
			Help:      "Time spent computing a settlement, excluding I/O.",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		}),
	}
	reg.MustRegister(
		m.calculations,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// observe is a no-op on a nil *Metrics. The reason label is the parsed
// Reason, so unknown tags collapse into "outro" and cardinality stays bounded.
func (m *Metrics) observe(reason rescisao.Reason, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.calculations.WithLabelValues(string(reason), result).Inc()
	if result == resultSuccess {
		m.duration.Observe(elapsed.Seconds())
	}
}
