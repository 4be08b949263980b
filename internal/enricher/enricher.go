package enricher

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/riftboard/riftboard/internal/ddragon"
	"github.com/riftboard/riftboard/internal/metrics"
	"github.com/riftboard/riftboard/internal/riot"
	"github.com/riftboard/riftboard/internal/roster"
	"golang.org/x/time/rate"
)

// topChampCount is how many mastery champions are retained for display.
const topChampCount = 5

// Enricher resolves a sheet identity through the chain of Riot lookups and
// produces a persisted PlayerRecord.
type Enricher struct {
	riot     riot.Client
	catalog  *ddragon.Catalog
	store    roster.PlayerStore
	metrics  metrics.Metrics
	throttle *rate.Limiter
}

// New creates an Enricher. requestDelay is the fixed pause enforced between
// upstream calls; pass 0 to disable throttling.
func New(riotClient riot.Client, catalog *ddragon.Catalog, store roster.PlayerStore, m metrics.Metrics, requestDelay time.Duration) *Enricher {
	var throttle *rate.Limiter
	if requestDelay > 0 {
		throttle = rate.NewLimiter(rate.Every(requestDelay), 1)
	}
	return &Enricher{
		riot:     riotClient,
		catalog:  catalog,
		store:    store,
		metrics:  m,
		throttle: throttle,
	}
}

// Enrich runs the lookup pipeline for one identity. Account and profile are
// mandatory; rank and mastery standings fall back to Unranked / empty on
// failure. The two standings lookups are issued concurrently since neither
// depends on the other's result.
func (e *Enricher) Enrich(ctx context.Context, name, tag, rolesRaw string) Result {
	start := time.Now()
	defer func() {
		e.metrics.ObserveEnrichmentDuration(time.Since(start).Seconds())
	}()

	e.wait(ctx)
	account, err := e.riot.AccountByRiotID(ctx, name, tag)
	if err != nil {
		log.Warn("Could not resolve account", "name", name, "tag", tag, "error", err)
		return Result{Status: StatusNotFound, Reason: "Player not found", Err: err}
	}

	e.wait(ctx)
	summoner, err := e.riot.SummonerByPUUID(ctx, account.PUUID)
	if err != nil {
		log.Warn("Could not fetch summoner", "name", name, "tag", tag, "error", err)
		return Result{Status: StatusNotFound, Reason: "Summoner not found", Err: err}
	}

	rank := roster.Unranked()
	var masteries []riot.ChampionMastery
	var rankFailed, masteryFailed bool

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		e.wait(ctx)
		entries, err := e.riot.LeagueEntriesByPUUID(ctx, account.PUUID)
		if err != nil {
			log.Warn("Rank lookup failed, falling back to Unranked", "name", name, "tag", tag, "error", err)
			rankFailed = true
			return
		}
		for _, entry := range entries {
			if entry.QueueType == riot.QueueRankedSolo {
				rank = roster.RankStanding{Tier: entry.Tier, Division: entry.Rank, Points: entry.LeaguePoints}
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		e.wait(ctx)
		result, err := e.riot.ChampionMasteriesByPUUID(ctx, account.PUUID)
		if err != nil {
			log.Warn("Mastery lookup failed, falling back to empty list", "name", name, "tag", tag, "error", err)
			masteryFailed = true
			return
		}
		masteries = result
	}()
	wg.Wait()

	topChamps := []roster.ChampionStanding{}
	for i, mastery := range masteries {
		if i >= topChampCount {
			break
		}
		info := e.catalog.Resolve(ctx, mastery.ChampionID)
		topChamps = append(topChamps, roster.ChampionStanding{
			Name:   info.Name,
			Img:    info.Img,
			Points: mastery.ChampionPoints,
		})
	}
	var highest *roster.MasteryChampion
	if len(topChamps) > 0 {
		highest = &roster.MasteryChampion{Name: topChamps[0].Name, Points: topChamps[0].Points}
	}

	record := &roster.PlayerRecord{
		PUUID:          account.PUUID,
		Name:           name,
		Tag:            tag,
		Roles:          roster.NormalizeRoles(rolesRaw),
		SummonerLevel:  summoner.SummonerLevel,
		ProfileIconID:  summoner.ProfileIconID,
		SoloRank:       rank,
		TopChamps:      topChamps,
		HighestMastery: highest,
	}

	status := StatusEnriched
	if rankFailed || masteryFailed {
		status = StatusDegraded
	}
	return Result{Status: status, Record: record}
}

// EnrichAndStore runs the pipeline and, on success, upserts the record.
// Terminal failures leave the store untouched.
func (e *Enricher) EnrichAndStore(ctx context.Context, name, tag, rolesRaw string) Result {
	result := e.Enrich(ctx, name, tag, rolesRaw)
	if !result.Succeeded() {
		e.metrics.IncEnrichmentFailures()
		return result
	}

	if err := e.store.Upsert(result.Record); err != nil {
		log.Error("Failed to upsert player", "name", name, "tag", tag, "error", err)
		e.metrics.IncEnrichmentFailures()
		return Result{Status: StatusFailed, Record: result.Record, Reason: "Database error", Err: err}
	}

	e.metrics.IncPlayersEnriched()
	log.Info("Upserted player", "name", name, "tag", tag, "status", result.Status)
	return result
}

func (e *Enricher) wait(ctx context.Context) {
	if e.throttle == nil {
		return
	}
	if err := e.throttle.Wait(ctx); err != nil {
		log.Warn("Throttle wait aborted", "error", err)
	}
}
