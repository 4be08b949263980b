package roster

// PlayerStore defines the interface for interacting with persisted player data.
type PlayerStore interface {
	Upsert(record *PlayerRecord) error
	Get(puuid string) (*PlayerRecord, error)
	ListAll() ([]PlayerRecord, error)
	Clear()
}
