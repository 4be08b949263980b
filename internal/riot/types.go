package riot

// QueueRankedSolo is the ranked queue type this system cares about.
const QueueRankedSolo = "RANKED_SOLO_5x5"

// Account is the response from the account-v1 by-riot-id endpoint.
type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Summoner is the response from the summoner-v4 by-puuid endpoint.
type Summoner struct {
	ID            string `json:"id"`
	ProfileIconID int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
}

// LeagueEntry is one entry from the league-v4 by-puuid endpoint. A player has
// at most one entry per queue type.
type LeagueEntry struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
}

// ChampionMastery is one entry from the champion-mastery-v4 by-puuid endpoint.
// The upstream returns entries sorted by points, descending.
type ChampionMastery struct {
	ChampionID     int `json:"championId"`
	ChampionPoints int `json:"championPoints"`
}
