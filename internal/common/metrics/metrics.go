// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatTurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_turns_total",
			Help: "Total number of chat turns processed by outcome",
		},
		[]string{"outcome"},
	)

	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_provider_requests_total",
			Help: "Total number of upstream provider requests",
		},
		[]string{"provider", "status"},
	)

	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "chatbot_provider_request_duration_seconds",
			Help: "Duration of upstream provider requests in seconds",
		},
		[]string{"provider"},
	)

	DestinationCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_destination_cache_hits_total",
			Help: "Destination cache lookups by result",
		},
		[]string{"result"},
	)

	SessionCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_session_cache_hits_total",
			Help: "Session cache lookups by result",
		},
		[]string{"result"},
	)

	DestinationSavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_destination_saves_total",
			Help: "Destination records persisted by status",
		},
		[]string{"status"},
	)
)
