package provider

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"brandscope/internal/types"
)

// Cache is the provider-level response cache: sqlite-backed, keyed by
// normalized domain plus query parameters, TTL-bounded, read-mostly.
// A refresh replaces the whole row in one statement, so concurrent
// readers never observe a partially written response.
type Cache struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

const cacheSchema = `
CREATE TABLE IF NOT EXISTS provider_responses (
	cache_key  TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	fetched_at INTEGER NOT NULL
);`

// OpenCache opens (creating if needed) the response cache at path. Use
// ":memory:" for an ephemeral cache.
func OpenCache(path string, ttl time.Duration) (*Cache, error) {
	if ttl <= 0 {
		return nil, errors.New("cache ttl must be positive")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open response cache: %w", err)
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init response cache schema: %w", err)
	}
	return &Cache{db: db, ttl: ttl, now: func() time.Time { return time.Now().UTC() }}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error { return c.db.Close() }

// Get returns the cached items for key if present and within TTL.
func (c *Cache) Get(ctx context.Context, key string) ([]types.CandidateItem, bool, error) {
	var payload string
	var fetchedAt int64
	err := c.db.QueryRowContext(ctx,
		`SELECT payload, fetched_at FROM provider_responses WHERE cache_key = ?`, key).
		Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read response cache: %w", err)
	}
	if c.now().Sub(time.Unix(fetchedAt, 0)) > c.ttl {
		return nil, false, nil
	}
	var items []types.CandidateItem
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		// A corrupt row is treated as a miss; the next Put overwrites it.
		return nil, false, nil
	}
	return items, true, nil
}

// Put stores a fetched response under key, replacing any previous row.
func (c *Cache) Put(ctx context.Context, key string, items []types.CandidateItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode response payload: %w", err)
	}
	_, err = c.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO provider_responses (cache_key, payload, fetched_at) VALUES (?, ?, ?)`,
		key, string(payload), c.now().Unix())
	if err != nil {
		return fmt.Errorf("write response cache: %w", err)
	}
	return nil
}

// CachedProvider decorates a Provider with the response cache. Fetch
// errors are returned as-is; cache write failures are swallowed because
// the cache is an optimization, not a system of record.
type CachedProvider struct {
	inner Provider
	cache *Cache
}

// NewCachedProvider wraps inner with cache.
func NewCachedProvider(inner Provider, cache *Cache) *CachedProvider {
	return &CachedProvider{inner: inner, cache: cache}
}

// FetchRankedItems serves from cache when possible, fetching and
// publishing on a miss.
func (p *CachedProvider) FetchRankedItems(ctx context.Context, domain, locale string, limit int) ([]types.CandidateItem, error) {
	key := CacheKey(domain, locale, limit)
	if items, ok, err := p.cache.Get(ctx, key); err == nil && ok {
		return items, nil
	}
	items, err := p.inner.FetchRankedItems(ctx, domain, locale, limit)
	if err != nil {
		return nil, err
	}
	_ = p.cache.Put(ctx, key, items)
	return items, nil
}
