package http

import (
	"context"
	"net/http"

	"github.com/riftboard/riftboard/internal/config"
	"github.com/riftboard/riftboard/internal/enricher"
	"github.com/riftboard/riftboard/internal/metrics"
	"github.com/riftboard/riftboard/internal/notifier"
	"github.com/riftboard/riftboard/internal/roster"
	"github.com/riftboard/riftboard/internal/sheet"
)

// RosterImporter fetches the current sign-up sheet. Satisfied by
// sheet.Importer; an interface so handler tests can stub the sheet.
type RosterImporter interface {
	Fetch(ctx context.Context) ([]sheet.Entry, error)
}

type Server struct {
	Store          roster.PlayerStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Importer       RosterImporter
	Enricher       *enricher.Enricher
	Notifier       notifier.Notifier
	Router         *http.ServeMux
}
