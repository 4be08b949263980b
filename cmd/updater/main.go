// The updater is the scheduled batch job behind the roster. It pulls the
// sign-up sheet, enriches every player against the Riot API and upserts the
// results, then posts a summary. Run it from cron or a CI schedule; the
// server's /refresh endpoint does the same thing on demand.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/riftboard/riftboard/internal/cache"
	"github.com/riftboard/riftboard/internal/config"
	"github.com/riftboard/riftboard/internal/database"
	"github.com/riftboard/riftboard/internal/ddragon"
	"github.com/riftboard/riftboard/internal/enricher"
	"github.com/riftboard/riftboard/internal/metrics"
	"github.com/riftboard/riftboard/internal/notifier"
	"github.com/riftboard/riftboard/internal/notifier/slack"
	"github.com/riftboard/riftboard/internal/riot"
	"github.com/riftboard/riftboard/internal/roster"
	"github.com/riftboard/riftboard/internal/sheet"
)

const catalogCacheTTL = 24 * time.Hour

func main() {
	dryRun := flag.Bool("dry-run", false, "enrich players without writing to the store")
	flag.Parse()

	log.SetFormatter(log.JSONFormatter)

	runID := uuid.NewString()
	start := time.Now()
	log.Info("Starting roster updater", "runID", runID, "dryRun", *dryRun)

	cfg := config.Load()
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer dbTeardown()

	store := roster.New(db)
	catalog := ddragon.New(cache.New(db, catalogCacheTTL))
	riotClient := riot.NewClient(cfg.Riot)
	metricsSvc := metrics.NewService()
	enrich := enricher.New(riotClient, catalog, store, metricsSvc, cfg.Riot.RequestDelay)
	importer := sheet.NewImporter(cfg.Sheet.CSVURL)

	var notify notifier.Notifier = notifier.NewNoop()
	if cfg.Slack.Token != "" {
		notify = slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	}

	ctx := context.Background()
	metricsSvc.IncRefreshRuns()

	entries, err := importer.Fetch(ctx)
	if err != nil {
		log.Fatalf("Failed to fetch sign-up sheet: %s", err)
	}
	log.Info("Fetched sign-up sheet", "players", len(entries))

	summary := notifier.RefreshSummary{RunID: runID, Total: len(entries)}
	for _, entry := range entries {
		var result enricher.Result
		if *dryRun {
			result = enrich.Enrich(ctx, entry.Name, entry.Tag, entry.Roles)
		} else {
			result = enrich.EnrichAndStore(ctx, entry.Name, entry.Tag, entry.Roles)
		}

		switch result.Status {
		case enricher.StatusEnriched:
			summary.Enriched++
			log.Info("Player updated", "name", entry.Name, "tag", entry.Tag)
		case enricher.StatusDegraded:
			summary.Degraded++
			log.Warn("Player updated with fallback standings", "name", entry.Name, "tag", entry.Tag)
		default:
			summary.Failed++
			log.Warn("Skipping player", "name", entry.Name, "tag", entry.Tag, "reason", result.Reason)
		}
	}
	summary.Duration = time.Since(start)

	if err := notify.SendRefreshSummary(summary, *dryRun); err != nil {
		log.Error("Failed to send refresh summary", "error", err)
	}

	log.Info("Roster updater finished", "runID", runID, "total", summary.Total,
		"enriched", summary.Enriched, "degraded", summary.Degraded,
		"failed", summary.Failed, "duration", summary.Duration.String())
}
