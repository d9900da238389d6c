// Package metrics exposes Prometheus collectors of the Message Store: HTTP
// request counters and durations, plus gauges of stored users and messages
// read from the storage on every scrape.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "messenger"

// countTimeout bounds the storage query made by a gauge during a scrape.
const countTimeout = 2 * time.Second

// StoreCounter reports the number of stored users and messages.
type StoreCounter interface {
	Counts(ctx context.Context) (users int, messages int, err error)
}

type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New registers the request collectors, the Go runtime collector and, when
// store is non-nil, the users/messages gauges on a fresh registry.
func New(store StoreCounter, log *logger.Logger) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Number of HTTP requests served, by method, route and status.",
			},
			[]string{"method", "route", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency, by method and route.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	m.registry.MustRegister(
		m.requests,
		m.duration,
		collectors.NewGoCollector(),
	)

	if store != nil {
		m.registry.MustRegister(
			prometheus.NewGaugeFunc(
				prometheus.GaugeOpts{
					Namespace: namespace,
					Name:      "users",
					Help:      "Number of stored users.",
				},
				func() float64 {
					users, _ := count(store, log)
					return float64(users)
				},
			),
			prometheus.NewGaugeFunc(
				prometheus.GaugeOpts{
					Namespace: namespace,
					Name:      "messages",
					Help:      "Number of stored messages.",
				},
				func() float64 {
					_, messages := count(store, log)
					return float64(messages)
				},
			),
		)
	}

	return m
}

func count(store StoreCounter, log *logger.Logger) (int, int) {
	ctx, cancel := context.WithTimeout(context.Background(), countTimeout)
	defer cancel()

	users, messages, err := store.Counts(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("metrics: counting stored rows failed")
		return 0, 0
	}

	return users, messages
}

// ObserveRequest records one served request. route is the matched route
// pattern, never the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
