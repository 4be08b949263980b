package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		RefreshRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "riftboard_refresh_runs_total",
			Help: "The total number of roster refresh runs started.",
		}),
		PlayersEnriched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "riftboard_players_enriched_total",
			Help: "The total number of players successfully enriched and upserted.",
		}),
		EnrichmentFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "riftboard_enrichment_failures_total",
			Help: "The total number of players whose enrichment failed terminally.",
		}),
		EnrichmentDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "riftboard_enrichment_duration_seconds",
			Help:    "The duration of individual player enrichments.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "riftboard_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "riftboard_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "riftboard_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.RefreshRuns,
		s.PlayersEnriched,
		s.EnrichmentFailures,
		s.EnrichmentDuration,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncRefreshRuns() {
	s.RefreshRuns.Inc()
}

func (s *Service) IncPlayersEnriched() {
	s.PlayersEnriched.Inc()
}

func (s *Service) IncEnrichmentFailures() {
	s.EnrichmentFailures.Inc()
}

func (s *Service) ObserveEnrichmentDuration(seconds float64) {
	s.EnrichmentDuration.Observe(seconds)
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}
