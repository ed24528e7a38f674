package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/vmihailenco/msgpack/v5"

	"tscore/internal/token"
)

// tokenCacheSchema is bumped whenever CacheEntry or token.Token changes shape.
const tokenCacheSchema uint16 = 1

// CacheEntry is what the cache stores per source hash.
type CacheEntry struct {
	Schema uint16
	// Start is the byte offset of the first token; non-zero after a shebang.
	Start  int
	Tokens []token.Token
}

// TokenCache keeps raw tokens on disk, one msgpack file per content hash.
// It is safe for concurrent use.
type TokenCache struct {
	mu  sync.RWMutex
	dir string

	hits, misses atomic.Int64
}

// OpenTokenCache opens the cache under $XDG_CACHE_HOME/<app>/tokens, falling
// back to ~/.cache.
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewTokenCache(filepath.Join(base, app, "tokens"))
}

// NewTokenCache opens a cache rooted at dir, creating it if needed.
func NewTokenCache(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("token cache: %w", err)
	}
	return &TokenCache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *TokenCache) Dir() string {
	return c.dir
}

func (c *TokenCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, hexKey[:2], hexKey+".mp")
}

// Put stores entry under key. The file is written to a temporary name and
// renamed into place.
func (c *TokenCache) Put(key [32]byte, entry *CacheEntry) (err error) {
	if c == nil {
		return nil
	}
	entry.Schema = tokenCacheSchema

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(entry); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get loads the entry for key. A missing file or an entry from another
// schema is a miss.
func (c *TokenCache) Get(key [32]byte) (*CacheEntry, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.misses.Add(1)
			return nil, false, nil
		}
		return nil, false, err
	}
	var entry CacheEntry
	if err := msgpack.Unmarshal(data, &entry); err != nil {
		return nil, false, fmt.Errorf("token cache: corrupt entry: %w", err)
	}
	if entry.Schema != tokenCacheSchema {
		c.misses.Add(1)
		return nil, false, nil
	}
	c.hits.Add(1)
	return &entry, true, nil
}

// Stats returns the number of hits and misses so far.
func (c *TokenCache) Stats() (hits, misses int64) {
	if c == nil {
		return 0, 0
	}
	return c.hits.Load(), c.misses.Load()
}

// DropAll removes every entry.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := os.RemoveAll(c.dir); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
