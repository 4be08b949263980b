package roster

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a new PlayerStore.
func New(db *sql.DB) PlayerStore {
	return &store{
		db: db,
	}
}

// Upsert inserts a new player or overwrites an existing one. The conflict key
// is the puuid; every derived field is replaced and last_updated is bumped.
// Partial merges are never performed.
func (s *store) Upsert(record *PlayerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rolesJSON, err := json.Marshal(record.Roles)
	if err != nil {
		return err
	}
	soloRankJSON, err := json.Marshal(record.SoloRank)
	if err != nil {
		return err
	}
	topChampsJSON, err := json.Marshal(record.TopChamps)
	if err != nil {
		return err
	}
	var highestJSON []byte
	if record.HighestMastery != nil {
		highestJSON, err = json.Marshal(record.HighestMastery)
		if err != nil {
			return err
		}
	}

	lastUpdated := time.Now().Unix()

	stmt, err := s.db.Prepare(`
		INSERT INTO players (puuid, name, tag, roles_json, summoner_level, profile_icon_id, solo_rank_json, top_champs_json, highest_mastery_json, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(puuid) DO UPDATE SET
			name = excluded.name,
			tag = excluded.tag,
			roles_json = excluded.roles_json,
			summoner_level = excluded.summoner_level,
			profile_icon_id = excluded.profile_icon_id,
			solo_rank_json = excluded.solo_rank_json,
			top_champs_json = excluded.top_champs_json,
			highest_mastery_json = excluded.highest_mastery_json,
			last_updated = excluded.last_updated;
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	var highest any
	if highestJSON != nil {
		highest = string(highestJSON)
	}
	_, err = stmt.Exec(record.PUUID, record.Name, record.Tag, string(rolesJSON), record.SummonerLevel, record.ProfileIconID, string(soloRankJSON), string(topChampsJSON), highest, lastUpdated)
	return err
}

// Get retrieves a single player by puuid.
func (s *store) Get(puuid string) (*PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT puuid, name, tag, roles_json, summoner_level, profile_icon_id, solo_rank_json, top_champs_json, highest_mastery_json, last_updated
		FROM players WHERE puuid = ?
	`, puuid)
	return s.scanPlayer(row)
}

// ListAll returns every player, ordered by display name ascending.
func (s *store) ListAll() ([]PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT puuid, name, tag, roles_json, summoner_level, profile_icon_id, solo_rank_json, top_champs_json, highest_mastery_json, last_updated
		FROM players ORDER BY name ASC
	`)
	if err != nil {
		log.Error("Failed to query all players", "error", err)
		return nil, err
	}
	defer rows.Close()

	players := []PlayerRecord{}
	for rows.Next() {
		player, err := s.scanPlayer(rows)
		if err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, *player)
	}
	return players, nil
}

// scanPlayer is a helper function to scan a single player row.
func (s *store) scanPlayer(scanner interface{ Scan(...any) error }) (*PlayerRecord, error) {
	var player PlayerRecord
	var rolesJSON, soloRankJSON, topChampsJSON, highestJSON sql.NullString

	err := scanner.Scan(
		&player.PUUID, &player.Name, &player.Tag, &rolesJSON,
		&player.SummonerLevel, &player.ProfileIconID,
		&soloRankJSON, &topChampsJSON, &highestJSON, &player.LastUpdated,
	)
	if err != nil {
		return nil, err
	}

	player.Roles = []string{}
	if rolesJSON.Valid && rolesJSON.String != "" {
		if err := json.Unmarshal([]byte(rolesJSON.String), &player.Roles); err != nil {
			log.Error("Failed to unmarshal roles_json", "error", err, "puuid", player.PUUID)
		}
	}

	player.SoloRank = Unranked()
	if soloRankJSON.Valid && soloRankJSON.String != "" && soloRankJSON.String != "{}" {
		if err := json.Unmarshal([]byte(soloRankJSON.String), &player.SoloRank); err != nil {
			log.Error("Failed to unmarshal solo_rank_json", "error", err, "puuid", player.PUUID)
		}
	}

	player.TopChamps = []ChampionStanding{}
	if topChampsJSON.Valid && topChampsJSON.String != "" {
		if err := json.Unmarshal([]byte(topChampsJSON.String), &player.TopChamps); err != nil {
			log.Error("Failed to unmarshal top_champs_json", "error", err, "puuid", player.PUUID)
		}
	}

	if highestJSON.Valid && highestJSON.String != "" {
		var highest MasteryChampion
		if err := json.Unmarshal([]byte(highestJSON.String), &highest); err != nil {
			log.Error("Failed to unmarshal highest_mastery_json", "error", err, "puuid", player.PUUID)
		} else {
			player.HighestMastery = &highest
		}
	}

	return &player, nil
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM players"); err != nil {
		log.Error("Failed to clear players table", "error", err)
	}
}
