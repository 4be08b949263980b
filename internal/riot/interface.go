package riot

import "context"

// Client defines the interface for the Riot API lookups the enricher needs.
type Client interface {
	AccountByRiotID(ctx context.Context, name, tag string) (*Account, error)
	SummonerByPUUID(ctx context.Context, puuid string) (*Summoner, error)
	LeagueEntriesByPUUID(ctx context.Context, puuid string) ([]LeagueEntry, error)
	ChampionMasteriesByPUUID(ctx context.Context, puuid string) ([]ChampionMastery, error)
}
