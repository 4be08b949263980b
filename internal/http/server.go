package http

import (
	"net/http"

	"github.com/riftboard/riftboard/internal/config"
	"github.com/riftboard/riftboard/internal/enricher"
	"github.com/riftboard/riftboard/internal/metrics"
	"github.com/riftboard/riftboard/internal/notifier"
	"github.com/riftboard/riftboard/internal/roster"
)

func NewServer(store roster.PlayerStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, importer RosterImporter, enrich *enricher.Enricher, notifier notifier.Notifier) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Importer:       importer,
		Enricher:       enrich,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/", Chain(s.RootHandler(), corsMiddleware, paramsMiddleware))
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), corsMiddleware, paramsMiddleware))
	s.Router.Handle("/players", Chain(s.ListPlayersHandler(), corsMiddleware, paramsMiddleware))
	s.Router.Handle("/add-player", Chain(s.AddPlayerHandler(), corsMiddleware, paramsMiddleware))
	s.Router.Handle("/stats", Chain(s.StatsHandler(), corsMiddleware, paramsMiddleware))
	s.Router.Handle("/refresh", Chain(s.RefreshHandler(), corsMiddleware, paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), corsMiddleware, paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
