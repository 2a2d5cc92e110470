package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"subs_reconciler/internal/usecase"
)

const namespace = "subs_reconciler"

// Recorder counts reconciliation outcomes and HTTP traffic on the given registry
type Recorder struct {
	events       *prometheus.CounterVec
	linkFailures *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

var _ usecase.Metrics = (*Recorder)(nil)

// NewRecorder registers the collectors on registry
func NewRecorder(registry prometheus.Registerer) *Recorder {
	factory := promauto.With(registry)
	return &Recorder{
		events: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "webhook_events_total",
				Help:      "Webhook events handled, by event type and action taken",
			},
			[]string{"type", "action"},
		),
		linkFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "customer_link_failures_total",
				Help:      "Customer link maintenance faults that were swallowed",
			},
			[]string{"op"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

func (r *Recorder) EventHandled(eventType string, action usecase.Action) {
	if eventType == "" {
		eventType = "unknown"
	}
	r.events.WithLabelValues(eventType, string(action)).Inc()
}

func (r *Recorder) LinkFailed(op string) {
	r.linkFailures.WithLabelValues(op).Inc()
}

// ObserveRequest records one served HTTP request. route is the matched pattern, not the raw path.
func (r *Recorder) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
