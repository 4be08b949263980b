package dashboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riftboard/riftboard/internal/dashboard"
	"github.com/riftboard/riftboard/internal/roster"
)

func player(name, tag string, roles []string, level int, tier string) roster.PlayerRecord {
	rank := roster.Unranked()
	if tier != "" {
		rank = roster.RankStanding{Tier: tier, Division: "II", Points: 40}
	}
	return roster.PlayerRecord{
		PUUID:         "puuid-" + name,
		Name:          name,
		Tag:           tag,
		Roles:         roles,
		SummonerLevel: level,
		SoloRank:      rank,
	}
}

func TestFilterByRoleExactMembership(t *testing.T) {
	p := player("Ana", "NA1", []string{"top", "jungle"}, 100, "")

	assert.True(t, dashboard.HasRole(p, "jungle"))
	assert.True(t, dashboard.HasRole(p, "top"))
	assert.False(t, dashboard.HasRole(p, "mid"))
	assert.False(t, dashboard.HasRole(p, "jun"))
}

func TestFilterByRole(t *testing.T) {
	players := []roster.PlayerRecord{
		player("Ana", "NA1", []string{"top", "jungle"}, 100, ""),
		player("Bob", "NA1", []string{"mid"}, 200, ""),
	}

	junglers := dashboard.FilterByRole(players, "jungle")
	assert.Len(t, junglers, 1)
	assert.Equal(t, "Ana", junglers[0].Name)

	assert.Len(t, dashboard.FilterByRole(players, ""), 2)
	assert.Empty(t, dashboard.FilterByRole(players, "support"))
}

func TestSearchIsCaseInsensitiveOverIdentity(t *testing.T) {
	players := []roster.PlayerRecord{
		player("Shadow", "EUW", []string{"mid"}, 50, ""),
		player("Light", "NA1", []string{"adc"}, 60, ""),
	}

	assert.Len(t, dashboard.FilterBySearch(players, "shad"), 1)
	assert.Len(t, dashboard.FilterBySearch(players, "SHADOW#euw"), 1)
	assert.Len(t, dashboard.FilterBySearch(players, "na1"), 1)
	assert.Len(t, dashboard.FilterBySearch(players, ""), 2)
	assert.Empty(t, dashboard.FilterBySearch(players, "nobody"))
}

func TestSummarize(t *testing.T) {
	players := []roster.PlayerRecord{
		player("Ana", "NA1", []string{"top", "jungle"}, 100, "GOLD"),
		player("Bob", "NA1", []string{"jungle"}, 201, "GOLD"),
		player("Cid", "NA1", []string{"mid"}, 100, ""),
	}

	summary := dashboard.Summarize(players)

	assert.Equal(t, 3, summary.TotalPlayers)
	assert.Equal(t, 2, summary.RankedPlayers)
	// (100+201+100)/3 = 133.67, rounded.
	assert.Equal(t, 134, summary.AverageLevel)
	assert.Equal(t, map[string]int{"top": 1, "jungle": 2, "mid": 1}, summary.RoleDistribution)
	assert.Equal(t, map[string]int{"GOLD": 2}, summary.TierDistribution)
}

func TestSummarizeEmptyRoster(t *testing.T) {
	summary := dashboard.Summarize(nil)

	assert.Equal(t, 0, summary.TotalPlayers)
	assert.Equal(t, 0, summary.RankedPlayers)
	assert.Equal(t, 0, summary.AverageLevel)
	assert.Empty(t, summary.RoleDistribution)
}

func TestChartScalesToLargestBucket(t *testing.T) {
	bars := dashboard.Chart(map[string]int{"jungle": 4, "mid": 2, "top": 1})

	assert.Equal(t, []dashboard.Bar{
		{Label: "jungle", Count: 4, Percent: 100},
		{Label: "mid", Count: 2, Percent: 50},
		{Label: "top", Count: 1, Percent: 25},
	}, bars)
}

func TestChartTiesBreakByLabel(t *testing.T) {
	bars := dashboard.Chart(map[string]int{"mid": 2, "adc": 2})

	assert.Equal(t, "adc", bars[0].Label)
	assert.Equal(t, "mid", bars[1].Label)
}

func TestChartEmpty(t *testing.T) {
	assert.Empty(t, dashboard.Chart(nil))
}
