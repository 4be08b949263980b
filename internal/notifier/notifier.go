package notifier

import (
	"time"

	"github.com/riftboard/riftboard/internal/roster"
)

// RefreshSummary describes the outcome of one roster refresh run.
type RefreshSummary struct {
	RunID    string
	Total    int
	Enriched int
	Degraded int
	Failed   int
	Duration time.Duration
}

// Notifier defines a high-level interface for announcing roster events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// After a full refresh run
	SendRefreshSummary(summary RefreshSummary, dryRun bool) error
	// When a single player is added through the API
	SendPlayerAdded(player *roster.PlayerRecord, dryRun bool) error
}

// Noop is a Notifier that discards everything. Used when no provider is
// configured.
type Noop struct{}

var _ Notifier = Noop{}

// NewNoop creates a no-op notifier.
func NewNoop() Noop { return Noop{} }

func (Noop) SendRefreshSummary(RefreshSummary, bool) error    { return nil }
func (Noop) SendPlayerAdded(*roster.PlayerRecord, bool) error { return nil }
