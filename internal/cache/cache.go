package cache

import (
	"database/sql"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Cache is a TTL read-through cache. Entries expire on read: a stale entry is
// deleted and reported as a miss.
type Cache interface {
	Get(key string, dest any) (bool, error)
	Set(key string, value any) error
}

// store persists cache entries in the sqlite cache table, values encoded with
// MessagePack.
type store struct {
	db  *sql.DB
	ttl time.Duration
	mu  sync.Mutex
}

// New creates a cache whose entries are considered stale after ttl.
func New(db *sql.DB, ttl time.Duration) Cache {
	return &store{db: db, ttl: ttl}
}

func (s *store) Get(key string, dest any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var blob []byte
	var createdAt int64
	err := s.db.QueryRow("SELECT value, created_at FROM cache WHERE key = ?", key).Scan(&blob, &createdAt)
	if err == sql.ErrNoRows {
		log.Debug("Cache miss", "key", key)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if time.Since(time.UnixMilli(createdAt)) > s.ttl {
		log.Debug("Cache expired", "key", key)
		if _, err := s.db.Exec("DELETE FROM cache WHERE key = ?", key); err != nil {
			log.Error("Failed to delete stale cache entry", "error", err, "key", key)
		}
		return false, nil
	}

	if err := msgpack.Unmarshal(blob, dest); err != nil {
		return false, err
	}
	log.Debug("Cache hit", "key", key)
	return true, nil
}

func (s *store) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := msgpack.Marshal(value)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO cache (key, value, created_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			created_at = excluded.created_at;
	`, key, blob, time.Now().UnixMilli())
	return err
}
