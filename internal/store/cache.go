// Package store provides the SQLite-backed cache for upstream API fetches.
// Only raw fetch payloads are cached; analysis results are never persisted.
package store

import (
	"time"
)

// FetchCache is a TTL-bounded read-through cache over the fetch_cache
// table. It satisfies the fetch client's Cache interface.
type FetchCache struct {
	db  *DB
	ttl time.Duration
}

// NewFetchCache creates a FetchCache with the given freshness window.
// A non-positive ttl disables reads; writes still land for later runs.
func NewFetchCache(db *DB, ttl time.Duration) *FetchCache {
	return &FetchCache{db: db, ttl: ttl}
}

// Get returns the cached payload for key if it is still fresh.
func (c *FetchCache) Get(key string) ([]byte, bool) {
	if c.ttl <= 0 {
		return nil, false
	}

	var payload []byte
	var fetchedAt string
	row := c.db.conn.QueryRow(
		"SELECT payload, fetched_at FROM fetch_cache WHERE cache_key = ?", key,
	)
	if err := row.Scan(&payload, &fetchedAt); err != nil {
		return nil, false
	}

	t, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, false
	}
	if time.Since(t) > c.ttl {
		return nil, false
	}
	return payload, true
}

// Put stores or replaces the payload for key, stamped with the current time.
func (c *FetchCache) Put(key string, payload []byte) error {
	_, err := c.db.conn.Exec(`
		INSERT INTO fetch_cache (cache_key, payload, fetched_at)
		VALUES (?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET
			payload = excluded.payload,
			fetched_at = excluded.fetched_at
	`, key, payload, time.Now().UTC().Format(time.RFC3339))
	return err
}

// CacheStats describes the current cache contents.
type CacheStats struct {
	Entries int    `json:"entries"`
	Oldest  string `json:"oldest,omitempty"`
	Newest  string `json:"newest,omitempty"`
}

// Stats returns entry count and the oldest/newest fetch timestamps.
func (db *DB) Stats() (CacheStats, error) {
	var stats CacheStats
	row := db.conn.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(MIN(fetched_at), ''),
		       COALESCE(MAX(fetched_at), '')
		FROM fetch_cache
	`)
	if err := row.Scan(&stats.Entries, &stats.Oldest, &stats.Newest); err != nil {
		return CacheStats{}, err
	}
	return stats, nil
}

// Purge deletes all cached entries and returns how many were removed.
func (db *DB) Purge() (int64, error) {
	res, err := db.conn.Exec("DELETE FROM fetch_cache")
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
