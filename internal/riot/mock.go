package riot

import "context"

// MockClient is a mock implementation of the Client interface for testing.
type MockClient struct {
	AccountByRiotIDFunc          func(ctx context.Context, name, tag string) (*Account, error)
	SummonerByPUUIDFunc          func(ctx context.Context, puuid string) (*Summoner, error)
	LeagueEntriesByPUUIDFunc     func(ctx context.Context, puuid string) ([]LeagueEntry, error)
	ChampionMasteriesByPUUIDFunc func(ctx context.Context, puuid string) ([]ChampionMastery, error)
}

// NewMock creates a new mock instance.
func NewMock() *MockClient {
	return &MockClient{}
}

var _ Client = (*MockClient)(nil)

func (m *MockClient) AccountByRiotID(ctx context.Context, name, tag string) (*Account, error) {
	if m.AccountByRiotIDFunc != nil {
		return m.AccountByRiotIDFunc(ctx, name, tag)
	}
	return &Account{PUUID: "mock-puuid", GameName: name, TagLine: tag}, nil
}

func (m *MockClient) SummonerByPUUID(ctx context.Context, puuid string) (*Summoner, error) {
	if m.SummonerByPUUIDFunc != nil {
		return m.SummonerByPUUIDFunc(ctx, puuid)
	}
	return &Summoner{ID: "mock-summoner", SummonerLevel: 30}, nil
}

func (m *MockClient) LeagueEntriesByPUUID(ctx context.Context, puuid string) ([]LeagueEntry, error) {
	if m.LeagueEntriesByPUUIDFunc != nil {
		return m.LeagueEntriesByPUUIDFunc(ctx, puuid)
	}
	return nil, nil
}

func (m *MockClient) ChampionMasteriesByPUUID(ctx context.Context, puuid string) ([]ChampionMastery, error) {
	if m.ChampionMasteriesByPUUIDFunc != nil {
		return m.ChampionMasteriesByPUUIDFunc(ctx, puuid)
	}
	return nil, nil
}
