package ddragon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/riftboard/riftboard/internal/cache"
)

// FallbackVersion is used when the version listing cannot be fetched.
const FallbackVersion = "15.12.1"

// ChampionInfo is the display data for one champion.
type ChampionInfo struct {
	Name string `json:"name"`
	Img  string `json:"img"`
}

// Catalog resolves numeric champion ids to display names and images for one
// Data Dragon dataset version. It is lazily initialized and memoized for the
// life of the process; construct one and pass it by reference.
type Catalog struct {
	httpClient *http.Client
	cache      cache.Cache
	BaseURL    string

	mu        sync.Mutex
	version   string
	champions map[int]ChampionInfo
	loaded    bool
}

// New creates a Catalog. The cache is optional; pass nil to always hit the
// network on first load.
func New(c cache.Cache) *Catalog {
	return &Catalog{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      c,
		BaseURL:    "https://ddragon.leagueoflegends.com",
	}
}

// ResolveVersion returns the latest known dataset version. On transport
// failure it returns FallbackVersion instead of failing the caller. The
// result is memoized.
func (c *Catalog) ResolveVersion(ctx context.Context) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolveVersionLocked(ctx)
}

func (c *Catalog) resolveVersionLocked(ctx context.Context) string {
	if c.version != "" {
		return c.version
	}

	var versions []string
	if err := c.fetchJSON(ctx, c.BaseURL+"/api/versions.json", &versions); err != nil || len(versions) == 0 {
		log.Error("Failed to fetch Data Dragon versions, using fallback", "error", err, "fallback", FallbackVersion)
		c.version = FallbackVersion
		return c.version
	}

	c.version = versions[0]
	log.Info("Resolved Data Dragon version", "version", c.version)
	return c.version
}

// Load returns the champion id mapping, fetching it on first call. Once
// populated (or failed), it is never re-fetched for the life of the catalog;
// on transport or parse failure an empty mapping is returned and callers must
// treat unknown ids gracefully.
func (c *Catalog) Load(ctx context.Context) map[int]ChampionInfo {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.champions
	}

	version := c.resolveVersionLocked(ctx)
	c.champions = map[int]ChampionInfo{}
	c.loaded = true

	cacheKey := "ddragon:champions:" + version
	if c.cache != nil {
		var cached map[int]ChampionInfo
		if hit, err := c.cache.Get(cacheKey, &cached); err == nil && hit {
			c.champions = cached
			return c.champions
		}
	}

	var file championFile
	url := fmt.Sprintf("%s/cdn/%s/data/en_US/champion.json", c.BaseURL, version)
	if err := c.fetchJSON(ctx, url, &file); err != nil {
		log.Error("Failed to fetch champion data", "error", err, "version", version)
		return c.champions
	}

	for _, champ := range file.Data {
		var id int
		if _, err := fmt.Sscanf(champ.Key, "%d", &id); err != nil {
			log.Warn("Skipping champion with non-numeric key", "key", champ.Key, "name", champ.Name)
			continue
		}
		c.champions[id] = ChampionInfo{
			Name: champ.Name,
			Img:  fmt.Sprintf("%s/cdn/%s/img/champion/%s", c.BaseURL, version, champ.Image.Full),
		}
	}
	log.Info("Loaded champion catalog", "version", version, "champions", len(c.champions))

	if c.cache != nil && len(c.champions) > 0 {
		if err := c.cache.Set(cacheKey, c.champions); err != nil {
			log.Error("Failed to cache champion catalog", "error", err)
		}
	}
	return c.champions
}

// Resolve translates a champion id to its display data, loading the catalog
// if needed. Unknown ids degrade to an "ID:<id>" name and an empty image.
func (c *Catalog) Resolve(ctx context.Context, id int) ChampionInfo {
	if info, ok := c.Load(ctx)[id]; ok {
		return info
	}
	return ChampionInfo{Name: fmt.Sprintf("ID:%d", id), Img: ""}
}

// Reload discards the memoized state so the next call fetches fresh data.
func (c *Catalog) Reload() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.version = ""
	c.champions = nil
	c.loaded = false
}

func (c *Catalog) fetchJSON(ctx context.Context, url string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

type championFile struct {
	Data map[string]struct {
		Key   string `json:"key"`
		Name  string `json:"name"`
		Image struct {
			Full string `json:"full"`
		} `json:"image"`
	} `json:"data"`
}
