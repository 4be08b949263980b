package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service is the Prometheus-backed Metrics implementation.
type Service struct {
	RefreshRuns        prometheus.Counter
	PlayersEnriched    prometheus.Counter
	EnrichmentFailures prometheus.Counter
	EnrichmentDuration prometheus.Histogram
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
