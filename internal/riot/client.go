package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/riftboard/riftboard/internal/config"
)

// ErrNotFound is returned when the upstream reports a 404 for an identity or
// profile lookup.
var ErrNotFound = errors.New("riot: not found")

// APIClient is a custom Riot API client that implements the Client interface.
type APIClient struct {
	httpClient      *http.Client
	apiKey          string
	RoutingBaseURL  string
	PlatformBaseURL string
}

// NewClient creates a new Riot client for the configured regions.
func NewClient(cfg config.RiotConfig) Client {
	return &APIClient{
		httpClient:      &http.Client{Timeout: 10 * time.Second},
		apiKey:          cfg.APIKey,
		RoutingBaseURL:  fmt.Sprintf("https://%s.api.riotgames.com", cfg.RoutingRegion),
		PlatformBaseURL: fmt.Sprintf("https://%s.api.riotgames.com", cfg.PlatformRegion),
	}
}

// Ensure APIClient implements the Client interface.
var _ Client = (*APIClient)(nil)

// AccountByRiotID resolves a "name#tag" identity to a stable puuid.
func (c *APIClient) AccountByRiotID(ctx context.Context, name, tag string) (*Account, error) {
	endpoint := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		c.RoutingBaseURL, url.PathEscape(name), url.PathEscape(tag))

	var account Account
	if err := c.doGet(ctx, endpoint, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// SummonerByPUUID fetches level and profile icon for a resolved account.
func (c *APIClient) SummonerByPUUID(ctx context.Context, puuid string) (*Summoner, error) {
	endpoint := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-puuid/%s", c.PlatformBaseURL, puuid)

	var summoner Summoner
	if err := c.doGet(ctx, endpoint, &summoner); err != nil {
		return nil, err
	}
	return &summoner, nil
}

// LeagueEntriesByPUUID fetches a player's rank standings across all queues.
func (c *APIClient) LeagueEntriesByPUUID(ctx context.Context, puuid string) ([]LeagueEntry, error) {
	endpoint := fmt.Sprintf("%s/lol/league/v4/entries/by-puuid/%s", c.PlatformBaseURL, puuid)

	var entries []LeagueEntry
	if err := c.doGet(ctx, endpoint, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ChampionMasteriesByPUUID fetches a player's mastery standings, upstream-sorted
// by points descending.
func (c *APIClient) ChampionMasteriesByPUUID(ctx context.Context, puuid string) ([]ChampionMastery, error) {
	endpoint := fmt.Sprintf("%s/lol/champion-mastery/v4/champion-masteries/by-puuid/%s", c.PlatformBaseURL, puuid)

	var masteries []ChampionMastery
	if err := c.doGet(ctx, endpoint, &masteries); err != nil {
		return nil, err
	}
	return masteries, nil
}

// doGet performs a GET against the given endpoint with the API key attached as
// a query parameter, decoding the JSON response into dest.
func (c *APIClient) doGet(ctx context.Context, endpoint string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?api_key="+url.QueryEscape(c.apiKey), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log.Debug("Requesting from Riot API", "url", endpoint)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, endpoint)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Error("Received non-OK HTTP status from Riot API", "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
