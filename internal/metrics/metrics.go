package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// FacadeCalls counts façade operations by resource and routing mode (online|offline).
	FacadeCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "support_widget_facade_calls_total",
		Help: "Data-access façade calls by resource and routing mode.",
	}, []string{"resource", "mode"})

	// OfflineTransitions counts probe latches tripping to offline.
	OfflineTransitions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "support_widget_offline_transitions_total",
		Help: "Times the availability probe latched offline.",
	})

	// ChatFallbacks counts offline chat answers by source (endpoint|canned|apology).
	ChatFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "support_widget_chat_fallbacks_total",
		Help: "Offline chat answers by source.",
	}, []string{"source"})

	// HTTPRequests counts backend requests by method, route and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "support_api_http_requests_total",
		Help: "Support API requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	// AnswerLatency observes answer generation time by provider.
	AnswerLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "support_api_answer_duration_seconds",
		Help:    "Upstream answer generation latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"provider", "outcome"})
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
