package riot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountByRiotID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/riot/account/v1/accounts/by-riot-id/Ana/NA1", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{"puuid":"puuid-123","gameName":"Ana","tagLine":"NA1"}`)
	}))
	defer server.Close()

	client := APIClient{
		httpClient:      server.Client(),
		apiKey:          "test-key",
		RoutingBaseURL:  server.URL,
		PlatformBaseURL: server.URL,
	}

	account, err := client.AccountByRiotID(context.Background(), "Ana", "NA1")
	require.NoError(t, err)
	assert.Equal(t, "puuid-123", account.PUUID)
	assert.Equal(t, "Ana", account.GameName)
}

func TestAccountByRiotID_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := APIClient{
		httpClient:      server.Client(),
		apiKey:          "test-key",
		RoutingBaseURL:  server.URL,
		PlatformBaseURL: server.URL,
	}

	_, err := client.AccountByRiotID(context.Background(), "Nobody", "XX")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLeagueEntriesByPUUID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lol/league/v4/entries/by-puuid/puuid-123", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `[
			{"queueType":"RANKED_FLEX_SR","tier":"SILVER","rank":"I","leaguePoints":10},
			{"queueType":"RANKED_SOLO_5x5","tier":"GOLD","rank":"II","leaguePoints":54}
		]`)
	}))
	defer server.Close()

	client := APIClient{
		httpClient:      server.Client(),
		apiKey:          "test-key",
		RoutingBaseURL:  server.URL,
		PlatformBaseURL: server.URL,
	}

	entries, err := client.LeagueEntriesByPUUID(context.Background(), "puuid-123")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, QueueRankedSolo, entries[1].QueueType)
	assert.Equal(t, "GOLD", entries[1].Tier)
	assert.Equal(t, 54, entries[1].LeaguePoints)
}

func TestChampionMasteriesByPUUID_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := APIClient{
		httpClient:      server.Client(),
		apiKey:          "test-key",
		RoutingBaseURL:  server.URL,
		PlatformBaseURL: server.URL,
	}

	_, err := client.ChampionMasteriesByPUUID(context.Background(), "puuid-123")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}
