// Package dashboard computes the client-side views of the roster: search and
// role filtering over an already-fetched player list, and the aggregate
// statistics behind the chart tab. All functions are pure; the browser (or
// the /stats endpoint) applies them without further network round-trips.
package dashboard

import (
	"math"
	"sort"
	"strings"

	"github.com/riftboard/riftboard/internal/roster"
)

// Summary is the aggregate statistics view of the roster.
type Summary struct {
	TotalPlayers     int            `json:"total_players"`
	RankedPlayers    int            `json:"ranked_players"`
	AverageLevel     int            `json:"average_level"`
	RoleDistribution map[string]int `json:"role_distribution"`
	TierDistribution map[string]int `json:"tier_distribution"`
}

// Bar is one bucket of a histogram, with its width scaled proportionally to
// the largest bucket.
type Bar struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// MatchesSearch reports whether the lowercase "name#tag" identity contains the
// lowercase search term.
func MatchesSearch(player roster.PlayerRecord, term string) bool {
	return strings.Contains(strings.ToLower(player.RiotID()), strings.ToLower(strings.TrimSpace(term)))
}

// FilterBySearch keeps players whose identity matches the search term.
func FilterBySearch(players []roster.PlayerRecord, term string) []roster.PlayerRecord {
	filtered := []roster.PlayerRecord{}
	for _, p := range players {
		if MatchesSearch(p, term) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// HasRole reports whether the player's normalized role set contains the given
// role. Exact membership, not substring.
func HasRole(player roster.PlayerRecord, role string) bool {
	for _, r := range player.Roles {
		if strings.ToLower(strings.TrimSpace(r)) == role {
			return true
		}
	}
	return false
}

// FilterByRole keeps players whose role set contains the selected role. An
// empty selection keeps everyone.
func FilterByRole(players []roster.PlayerRecord, role string) []roster.PlayerRecord {
	if role == "" {
		return players
	}
	filtered := []roster.PlayerRecord{}
	for _, p := range players {
		if HasRole(p, role) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Summarize recomputes the statistics view over the full player list.
func Summarize(players []roster.PlayerRecord) Summary {
	summary := Summary{
		TotalPlayers:     len(players),
		RoleDistribution: map[string]int{},
		TierDistribution: map[string]int{},
	}

	totalLevels := 0
	for _, p := range players {
		totalLevels += p.SummonerLevel

		if p.SoloRank.Tier != "" && p.SoloRank.Tier != roster.TierUnranked {
			summary.RankedPlayers++
			summary.TierDistribution[p.SoloRank.Tier]++
		}

		for _, role := range p.Roles {
			role = strings.ToLower(strings.TrimSpace(role))
			if role != "" {
				summary.RoleDistribution[role]++
			}
		}
	}

	if len(players) > 0 {
		summary.AverageLevel = int(math.Round(float64(totalLevels) / float64(len(players))))
	}
	return summary
}

// Chart turns a histogram into bars sorted by count descending, each scaled
// to the maximum bucket.
func Chart(dist map[string]int) []Bar {
	bars := make([]Bar, 0, len(dist))
	maxCount := 0
	for label, count := range dist {
		bars = append(bars, Bar{Label: label, Count: count})
		if count > maxCount {
			maxCount = count
		}
	}

	sort.Slice(bars, func(i, j int) bool {
		if bars[i].Count != bars[j].Count {
			return bars[i].Count > bars[j].Count
		}
		return bars[i].Label < bars[j].Label
	})

	for i := range bars {
		if maxCount > 0 {
			bars[i].Percent = float64(bars[i].Count) / float64(maxCount) * 100
		}
	}
	return bars
}
