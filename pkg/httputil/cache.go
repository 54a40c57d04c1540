package httputil

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// ErrExpired is returned by [Cache.Get] when an entry exists but has
// exceeded its TTL. The stale data stays on disk; callers should fetch
// fresh data and overwrite it with [Cache.Set].
var ErrExpired = errors.New("cache entry expired")

// Cache is a file-based store for JSON-marshalable values. Each entry
// is one file named by the SHA-256 of its key, so keys may contain any
// characters at any length. Entries expire by file modification time;
// a TTL of zero never expires.
//
// A Cache is not goroutine-safe, but separate instances (including in
// separate processes) can share a directory.
type Cache struct {
	dir    string
	ttl    time.Duration
	prefix string
}

// NewCache creates a cache rooted at dir with the given TTL. An empty
// dir selects ~/.cache/pacgrid/. The directory is created if absent.
func NewCache(dir string, ttl time.Duration) (*Cache, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".cache", "pacgrid")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir, ttl: ttl}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string { return c.dir }

// TTL returns the entry time-to-live. Zero means no expiration.
func (c *Cache) TTL() time.Duration { return c.ttl }

// Get looks up key and unmarshals the stored value into v.
// It reports (true, nil) on a fresh hit, (false, nil) on a miss, and
// (false, ErrExpired) when the entry exists but is stale.
func (c *Cache) Get(key string, v any) (bool, error) {
	path := c.keyPath(c.prefix + key)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if c.ttl > 0 && time.Since(info.ModTime()) > c.ttl {
		return false, ErrExpired
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, v)
}

// Set stores v under key, overwriting any existing entry and resetting
// its TTL.
func (c *Cache) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(c.keyPath(c.prefix+key), data, 0o644)
}

// Namespace returns a view of the cache that prefixes every key,
// keeping different data sources from colliding. The returned Cache
// shares the parent's directory and TTL; namespaces nest.
func (c *Cache) Namespace(prefix string) *Cache {
	return &Cache{dir: c.dir, ttl: c.ttl, prefix: c.prefix + prefix}
}

func (c *Cache) keyPath(key string) string {
	h := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(h[:]))
}
