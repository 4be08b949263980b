package enricher_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riftboard/riftboard/internal/ddragon"
	"github.com/riftboard/riftboard/internal/enricher"
	"github.com/riftboard/riftboard/internal/metrics"
	"github.com/riftboard/riftboard/internal/riot"
	"github.com/riftboard/riftboard/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCatalog returns a catalog backed by a stub Data Dragon server that
// knows Jinx (222) and Aatrox (266).
func newTestCatalog(t *testing.T) *ddragon.Catalog {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/versions.json" {
			fmt.Fprintln(w, `["15.13.1"]`)
			return
		}
		fmt.Fprintln(w, `{"data":{
			"Jinx":   {"key":"222","name":"Jinx","image":{"full":"Jinx.png"}},
			"Aatrox": {"key":"266","name":"Aatrox","image":{"full":"Aatrox.png"}}
		}}`)
	}))
	t.Cleanup(server.Close)

	catalog := ddragon.New(nil)
	catalog.BaseURL = server.URL
	return catalog
}

func happyClient() *riot.MockClient {
	client := riot.NewMock()
	client.AccountByRiotIDFunc = func(ctx context.Context, name, tag string) (*riot.Account, error) {
		return &riot.Account{PUUID: "puuid-1", GameName: name, TagLine: tag}, nil
	}
	client.SummonerByPUUIDFunc = func(ctx context.Context, puuid string) (*riot.Summoner, error) {
		return &riot.Summoner{ID: "summ-1", ProfileIconID: 4567, SummonerLevel: 120}, nil
	}
	client.LeagueEntriesByPUUIDFunc = func(ctx context.Context, puuid string) ([]riot.LeagueEntry, error) {
		return []riot.LeagueEntry{
			{QueueType: "RANKED_FLEX_SR", Tier: "SILVER", Rank: "I", LeaguePoints: 10},
			{QueueType: riot.QueueRankedSolo, Tier: "GOLD", Rank: "II", LeaguePoints: 54},
		}, nil
	}
	client.ChampionMasteriesByPUUIDFunc = func(ctx context.Context, puuid string) ([]riot.ChampionMastery, error) {
		return []riot.ChampionMastery{
			{ChampionID: 222, ChampionPoints: 250000},
			{ChampionID: 266, ChampionPoints: 100000},
			{ChampionID: 1, ChampionPoints: 90000},
			{ChampionID: 2, ChampionPoints: 80000},
			{ChampionID: 3, ChampionPoints: 70000},
			{ChampionID: 4, ChampionPoints: 60000},
		}, nil
	}
	return client
}

func TestEnrichFullSuccess(t *testing.T) {
	store := roster.NewMock()
	e := enricher.New(happyClient(), newTestCatalog(t), store, metrics.NewMock(), 0)

	result := e.EnrichAndStore(context.Background(), "Ana", "NA1", "ADC, Mid")
	require.Equal(t, enricher.StatusEnriched, result.Status)
	require.NotNil(t, result.Record)

	record := result.Record
	assert.Equal(t, "puuid-1", record.PUUID)
	assert.Equal(t, []string{"adc", "mid"}, record.Roles)
	assert.Equal(t, 120, record.SummonerLevel)
	assert.Equal(t, roster.RankStanding{Tier: "GOLD", Division: "II", Points: 54}, record.SoloRank)

	require.Len(t, record.TopChamps, 5, "only the first five mastery entries are retained")
	assert.Equal(t, "Jinx", record.TopChamps[0].Name)
	assert.Equal(t, "Aatrox", record.TopChamps[1].Name)
	assert.Equal(t, "ID:1", record.TopChamps[2].Name, "unknown champion ids degrade gracefully")
	assert.Empty(t, record.TopChamps[2].Img)

	require.NotNil(t, record.HighestMastery)
	assert.Equal(t, "Jinx", record.HighestMastery.Name)
	assert.Equal(t, 250000, record.HighestMastery.Points)

	require.Len(t, store.UpsertCalls, 1)
}

func TestEnrichAccountNotFoundIsTerminal(t *testing.T) {
	client := happyClient()
	client.AccountByRiotIDFunc = func(ctx context.Context, name, tag string) (*riot.Account, error) {
		return nil, riot.ErrNotFound
	}
	store := roster.NewMock()
	mockMetrics := metrics.NewMock()
	e := enricher.New(client, newTestCatalog(t), store, mockMetrics, 0)

	result := e.EnrichAndStore(context.Background(), "Nobody", "XX", "top")
	assert.Equal(t, enricher.StatusNotFound, result.Status)
	assert.Equal(t, "Player not found", result.Reason)
	assert.Empty(t, store.UpsertCalls, "nothing is written on a terminal failure")
	assert.Equal(t, 1, mockMetrics.EnrichmentFailuresCount)
}

func TestEnrichSummonerNotFoundIsTerminal(t *testing.T) {
	client := happyClient()
	client.SummonerByPUUIDFunc = func(ctx context.Context, puuid string) (*riot.Summoner, error) {
		return nil, riot.ErrNotFound
	}
	store := roster.NewMock()
	e := enricher.New(client, newTestCatalog(t), store, metrics.NewMock(), 0)

	result := e.EnrichAndStore(context.Background(), "Ana", "NA1", "top")
	assert.Equal(t, enricher.StatusNotFound, result.Status)
	assert.Equal(t, "Summoner not found", result.Reason)
	assert.Empty(t, store.UpsertCalls)
}

func TestEnrichRankFailureDegrades(t *testing.T) {
	client := happyClient()
	client.LeagueEntriesByPUUIDFunc = func(ctx context.Context, puuid string) ([]riot.LeagueEntry, error) {
		return nil, errors.New("upstream unavailable")
	}
	store := roster.NewMock()
	e := enricher.New(client, newTestCatalog(t), store, metrics.NewMock(), 0)

	result := e.EnrichAndStore(context.Background(), "Ana", "NA1", "top")
	require.Equal(t, enricher.StatusDegraded, result.Status)
	assert.True(t, result.Succeeded(), "a failed rank lookup is non-fatal")
	assert.Equal(t, roster.Unranked(), result.Record.SoloRank)
	require.Len(t, store.UpsertCalls, 1, "enrichment still completes end to end")
}

func TestEnrichNoSoloEntryIsUnrankedButNotDegraded(t *testing.T) {
	client := happyClient()
	client.LeagueEntriesByPUUIDFunc = func(ctx context.Context, puuid string) ([]riot.LeagueEntry, error) {
		return []riot.LeagueEntry{{QueueType: "RANKED_FLEX_SR", Tier: "SILVER", Rank: "I", LeaguePoints: 10}}, nil
	}
	e := enricher.New(client, newTestCatalog(t), roster.NewMock(), metrics.NewMock(), 0)

	result := e.Enrich(context.Background(), "Ana", "NA1", "top")
	assert.Equal(t, enricher.StatusEnriched, result.Status)
	assert.Equal(t, roster.Unranked(), result.Record.SoloRank)
}

func TestEnrichMasteryFailureDegrades(t *testing.T) {
	client := happyClient()
	client.ChampionMasteriesByPUUIDFunc = func(ctx context.Context, puuid string) ([]riot.ChampionMastery, error) {
		return nil, errors.New("upstream unavailable")
	}
	e := enricher.New(client, newTestCatalog(t), roster.NewMock(), metrics.NewMock(), 0)

	result := e.Enrich(context.Background(), "Ana", "NA1", "top")
	require.Equal(t, enricher.StatusDegraded, result.Status)
	assert.Empty(t, result.Record.TopChamps)
	assert.Nil(t, result.Record.HighestMastery)
}

func TestEnrichAndStoreDatabaseError(t *testing.T) {
	store := roster.NewMock()
	store.UpsertFunc = func(record *roster.PlayerRecord) error {
		return errors.New("disk full")
	}
	e := enricher.New(happyClient(), newTestCatalog(t), store, metrics.NewMock(), 0)

	result := e.EnrichAndStore(context.Background(), "Ana", "NA1", "top")
	assert.Equal(t, enricher.StatusFailed, result.Status)
	assert.Equal(t, "Database error", result.Reason)
	assert.Error(t, result.Err)
}
