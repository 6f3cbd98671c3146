package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the HTTP collectors exposed on /metrics.
type Metrics struct {
	gatherer prometheus.Gatherer

	RequestsReceived prometheus.Counter
	ResponsesSent    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	InFlight         prometheus.Gauge
}

func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		RequestsReceived: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "castlist_requests_received_total",
				Help: "Count of received HTTP requests",
			},
		),
		ResponsesSent: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "castlist_responses_sent_total",
				Help: "Count of sent HTTP responses",
			},
			[]string{"method", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "castlist_request_duration_seconds",
				Help:    "Time taken to process a request",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 3},
			},
			[]string{"method"},
		),
		InFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "castlist_requests_in_flight",
				Help: "Current number of requests being served",
			},
		),
	}

	reg.MustRegister(
		m.RequestsReceived,
		m.ResponsesSent,
		m.RequestDuration,
		m.InFlight,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) Observe(method string, status int, elapsed time.Duration) {
	m.ResponsesSent.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}
