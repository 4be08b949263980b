package enricher

import "github.com/riftboard/riftboard/internal/roster"

// Status tags the outcome of an enrichment pipeline run.
type Status string

const (
	// StatusEnriched means every lookup succeeded.
	StatusEnriched Status = "ENRICHED"
	// StatusDegraded means the mandatory lookups succeeded but a standings
	// lookup failed and was absorbed with its fallback value.
	StatusDegraded Status = "DEGRADED"
	// StatusNotFound means the identity or profile is absent upstream.
	// Terminal for this player; nothing is written.
	StatusNotFound Status = "NOT_FOUND"
	// StatusFailed means an unexpected error, typically from persistence.
	StatusFailed Status = "FAILED"
)

// Result is the tagged outcome of enriching one player.
type Result struct {
	Status Status
	Record *roster.PlayerRecord
	// Reason is a short human-readable failure description, suitable for a
	// plain-text HTTP response.
	Reason string
	Err    error
}

// Succeeded reports whether a record was produced, possibly with fallback
// standings.
func (r Result) Succeeded() bool {
	return r.Status == StatusEnriched || r.Status == StatusDegraded
}
