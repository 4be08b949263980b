package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/riftboard/riftboard/internal/dashboard"
	"github.com/riftboard/riftboard/internal/enricher"
	"github.com/riftboard/riftboard/internal/notifier"
)

func (s *Server) RootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Riftboard API is running")
	}
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Store.ListAll()
		if err != nil {
			log.Error("Failed to list players", "error", err)
			http.Error(w, "Failed to list players", http.StatusInternalServerError)
			return
		}

		// Optional dashboard filters, applied server-side so the frontend
		// can stay a thin render layer.
		if search := r.URL.Query().Get("search"); search != "" {
			players = dashboard.FilterBySearch(players, search)
		}
		if role := strings.TrimSpace(r.URL.Query().Get("role")); role != "" {
			players = dashboard.FilterByRole(players, strings.ToLower(role))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(players); err != nil {
			log.Error("Failed to encode players", "error", err)
		}
	}
}

type addPlayerRequest struct {
	Name string `json:"name"`
	Tag  string `json:"tag"`
	Role string `json:"role"`
}

func (s *Server) AddPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req addPlayerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode add-player request", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		req.Tag = strings.TrimSpace(req.Tag)
		if req.Name == "" || req.Tag == "" {
			http.Error(w, "Both name and tag are required", http.StatusBadRequest)
			return
		}

		isDryRun := isDryRunFromContext(r)
		log.Info("Adding player", "name", req.Name, "tag", req.Tag, "dryRun", isDryRun)

		var result enricher.Result
		if isDryRun {
			result = s.Enricher.Enrich(r.Context(), req.Name, req.Tag, req.Role)
		} else {
			result = s.Enricher.EnrichAndStore(r.Context(), req.Name, req.Tag, req.Role)
		}

		switch result.Status {
		case enricher.StatusNotFound:
			http.Error(w, result.Reason, http.StatusNotFound)
			return
		case enricher.StatusFailed:
			http.Error(w, result.Reason, http.StatusInternalServerError)
			return
		}

		if err := s.Notifier.SendPlayerAdded(result.Record, isDryRun); err != nil {
			log.Error("Failed to announce new player", "error", err)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"player":  result.Record,
		})
	}
}

type statsResponse struct {
	Summary   dashboard.Summary `json:"summary"`
	RoleChart []dashboard.Bar   `json:"role_chart"`
	TierChart []dashboard.Bar   `json:"tier_chart"`
}

func (s *Server) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Store.ListAll()
		if err != nil {
			log.Error("Failed to list players for stats", "error", err)
			http.Error(w, "Failed to compute stats", http.StatusInternalServerError)
			return
		}

		summary := dashboard.Summarize(players)
		resp := statsResponse{
			Summary:   summary,
			RoleChart: dashboard.Chart(summary.RoleDistribution),
			TierChart: dashboard.Chart(summary.TierDistribution),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Error("Failed to encode stats", "error", err)
		}
	}
}

func (s *Server) RefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isDryRun := isDryRunFromContext(r)
		summary, err := s.runRefresh(r.Context(), isDryRun)
		if err != nil {
			log.Error("Roster refresh failed", "error", err)
			http.Error(w, "Failed to fetch sign-up sheet", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"run_id":   summary.RunID,
			"total":    summary.Total,
			"enriched": summary.Enriched,
			"degraded": summary.Degraded,
			"failed":   summary.Failed,
			"duration": summary.Duration.String(),
			"dry_run":  isDryRun,
		})
	}
}

// runRefresh pulls the sign-up sheet and enriches every entry in order. The
// upstream rate limit is respected by the enricher's throttle, so a full run
// can take a while with a large roster.
func (s *Server) runRefresh(ctx context.Context, dryRun bool) (notifier.RefreshSummary, error) {
	runID := uuid.NewString()
	start := time.Now()
	s.Metrics.IncRefreshRuns()
	log.Info("Starting roster refresh", "runID", runID, "dryRun", dryRun)

	entries, err := s.Importer.Fetch(ctx)
	if err != nil {
		return notifier.RefreshSummary{RunID: runID}, err
	}

	summary := notifier.RefreshSummary{RunID: runID, Total: len(entries)}
	for _, entry := range entries {
		var result enricher.Result
		if dryRun {
			result = s.Enricher.Enrich(ctx, entry.Name, entry.Tag, entry.Roles)
		} else {
			result = s.Enricher.EnrichAndStore(ctx, entry.Name, entry.Tag, entry.Roles)
		}

		switch result.Status {
		case enricher.StatusEnriched:
			summary.Enriched++
		case enricher.StatusDegraded:
			summary.Degraded++
			log.Warn("Player enriched with fallback standings", "name", entry.Name, "tag", entry.Tag)
		default:
			summary.Failed++
			log.Warn("Skipping player", "name", entry.Name, "tag", entry.Tag, "reason", result.Reason)
		}
	}
	summary.Duration = time.Since(start)

	if err := s.Notifier.SendRefreshSummary(summary, dryRun); err != nil {
		log.Error("Failed to send refresh summary", "error", err)
	}

	log.Info("Roster refresh finished", "runID", runID, "total", summary.Total,
		"enriched", summary.Enriched, "degraded", summary.Degraded, "failed", summary.Failed)
	return summary, nil
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to clear roster store")
		s.Store.Clear()
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Store cleared!")
	}
}
