package live

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the server's Prometheus instruments.
type metrics struct {
	activeSessions prometheus.Gauge
	sessionsTotal  prometheus.Counter
	eventsTotal    *prometheus.CounterVec
	eventDuration  *prometheus.HistogramVec
	patchesSent    prometheus.Counter
	handlerPanics  prometheus.Counter
}

// newMetrics registers the instruments with the given registry. Each
// server carries its own instruments so tests can use isolated registries.
func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "dom",
			Subsystem: "live",
			Name:      "active_sessions",
			Help:      "Number of connected live sessions",
		}),
		sessionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "dom",
			Subsystem: "live",
			Name:      "sessions_total",
			Help:      "Total live sessions accepted",
		}),
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dom",
			Subsystem: "live",
			Name:      "events_total",
			Help:      "Client events dispatched to handlers",
		}, []string{"page", "status"}),
		eventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dom",
			Subsystem: "live",
			Name:      "event_duration_seconds",
			Help:      "Handler execution time in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"page"}),
		patchesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "dom",
			Subsystem: "live",
			Name:      "patches_sent_total",
			Help:      "Mutation patches pushed to clients",
		}),
		handlerPanics: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "dom",
			Subsystem: "live",
			Name:      "handler_panics_total",
			Help:      "Recovered panics in event handlers",
		}),
	}
}
