package cache_test

import (
	"testing"
	"time"

	"github.com/riftboard/riftboard/internal/cache"
	"github.com/riftboard/riftboard/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Version string
	Count   int
}

func setupCache(t *testing.T, ttl time.Duration) (cache.Cache, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	return cache.New(db, ttl), teardown
}

func TestSetAndGet(t *testing.T) {
	c, teardown := setupCache(t, time.Hour)
	defer teardown()

	require.NoError(t, c.Set("ddragon", payload{Version: "15.12.1", Count: 170}))

	var got payload
	hit, err := c.Get("ddragon", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "15.12.1", got.Version)
	assert.Equal(t, 170, got.Count)
}

func TestGetMissingKey(t *testing.T) {
	c, teardown := setupCache(t, time.Hour)
	defer teardown()

	var got payload
	hit, err := c.Get("nope", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestExpireOnRead(t *testing.T) {
	c, teardown := setupCache(t, 30*time.Millisecond)
	defer teardown()

	require.NoError(t, c.Set("ddragon", payload{Version: "15.12.1"}))
	time.Sleep(60 * time.Millisecond)

	var got payload
	hit, err := c.Get("ddragon", &got)
	require.NoError(t, err)
	assert.False(t, hit, "stale entries must be reported as a miss")

	// The stale row is deleted on read, so a longer-TTL cache over the same
	// table must also miss.
	hit, err = c.Get("ddragon", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestSetOverwrites(t *testing.T) {
	c, teardown := setupCache(t, time.Hour)
	defer teardown()

	require.NoError(t, c.Set("ddragon", payload{Version: "15.12.1"}))
	require.NoError(t, c.Set("ddragon", payload{Version: "15.13.1"}))

	var got payload
	hit, err := c.Get("ddragon", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "15.13.1", got.Version)
}
