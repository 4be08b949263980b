package roster

import (
	"database/sql"
	"strings"
	"sync"
)

// store handles all database operations for the roster.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// TierUnranked is the rank tier assigned when the upstream ranked-solo lookup
// yields no entry for a player.
const TierUnranked = "Unranked"

// Roles the ladder recognizes, in display order.
var KnownRoles = []string{"top", "jungle", "mid", "adc", "support", "fill"}

// RankStanding is a player's ranked-solo queue standing.
type RankStanding struct {
	Tier     string `json:"tier"`
	Division string `json:"division"`
	Points   int    `json:"points"`
}

// Unranked is the fallback standing for players without a ranked-solo entry.
func Unranked() RankStanding {
	return RankStanding{Tier: TierUnranked, Division: "", Points: 0}
}

// ChampionStanding is one of a player's top mastery champions, denormalized
// with the display name and image resolved at enrichment time.
type ChampionStanding struct {
	Name   string `json:"name"`
	Img    string `json:"img"`
	Points int    `json:"points"`
}

// MasteryChampion is a player's single highest-mastery champion.
type MasteryChampion struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// PlayerRecord is the persisted, fully enriched view of one ladder player.
type PlayerRecord struct {
	PUUID          string             `json:"puuid"`
	Name           string             `json:"name"`
	Tag            string             `json:"tag"`
	Roles          []string           `json:"roles"`
	SummonerLevel  int                `json:"summoner_level"`
	ProfileIconID  int                `json:"profile_icon_id"`
	SoloRank       RankStanding       `json:"solo_rank"`
	TopChamps      []ChampionStanding `json:"top_champs"`
	HighestMastery *MasteryChampion   `json:"highest_mastery_champ"`
	LastUpdated    int64              `json:"last_updated"`
}

// RiotID returns the full identity in "Name#Tag" format.
func (r *PlayerRecord) RiotID() string {
	return r.Name + "#" + r.Tag
}

// NormalizeRoles splits a free-text role preference into trimmed, lowercased
// role tags, dropping empty entries. Unknown tags are kept as-is; the source
// sheet is free text and the dashboard degrades gracefully.
func NormalizeRoles(raw string) []string {
	parts := strings.Split(raw, ",")
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		role := strings.ToLower(strings.TrimSpace(p))
		if role != "" {
			roles = append(roles, role)
		}
	}
	return roles
}
