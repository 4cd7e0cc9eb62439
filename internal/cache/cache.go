// Package cache provides a small file-based cache for name lookups.
//
// The hue package itself never caches; this cache belongs to the CLI layer
// and only holds resource name listings so `--name` resolution and shell
// completion do not hit the bridge on every invocation. Cache files are
// JSON, scoped per resource type, bridge host, and username. Default TTL is
// 5 minutes. Disable with HUECTL_NO_CACHE=1.
package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const DefaultTTL = 5 * time.Minute

type entry struct {
	CachedAt time.Time       `json:"cached_at"`
	Items    json.RawMessage `json:"items"`
}

// Store reads and writes a single cache key (resource+host+username).
type Store struct {
	path string
	ttl  time.Duration
}

// NewStore creates a Store with the default 5-minute TTL. dir is the cache
// directory, key the resource type (e.g. "lights").
func NewStore(dir, key, host, username string) *Store {
	return NewStoreWithTTL(dir, key, host, username, DefaultTTL)
}

// NewStoreWithTTL creates a Store with a custom TTL.
func NewStoreWithTTL(dir, key, host, username string, ttl time.Duration) *Store {
	key = sanitizeKey(key)
	hash := sha1.Sum([]byte(host + "\x00" + username))
	suffix := hex.EncodeToString(hash[:6])
	return &Store{
		path: filepath.Join(dir, fmt.Sprintf("%s_%s.json", key, suffix)),
		ttl:  ttl,
	}
}

// Get loads cached items into dst. Returns false on miss (no file, expired,
// disabled).
func (s *Store) Get(dst any) bool {
	if disabled() {
		return false
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return false
	}
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return false
	}
	if time.Since(e.CachedAt) > s.ttl {
		return false
	}
	return json.Unmarshal(e.Items, dst) == nil
}

// Put writes items to the cache. Silently no-ops on error or when disabled.
func (s *Store) Put(items any) {
	if disabled() {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	data, err := json.Marshal(entry{CachedAt: time.Now(), Items: raw})
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0o600)
}

// Invalidate removes the cache file.
func (s *Store) Invalidate() {
	_ = os.Remove(s.path)
}

// DefaultDir returns the cache directory, typically under os.UserCacheDir.
func DefaultDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "huectl")
	}
	return filepath.Join(base, "huectl")
}

func disabled() bool {
	return os.Getenv("HUECTL_NO_CACHE") == "1"
}

func sanitizeKey(key string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", "..", "_", " ", "_")
	key = replacer.Replace(key)
	if key == "" {
		key = "default"
	}
	return key
}
