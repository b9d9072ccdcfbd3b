// Package diskcache implements the Persistent Cache: a
// content-hash-keyed, atomically-written on-disk cache for the
// expensive Candidate Index build and reference-corpus load steps.
// Writes go through renameio's atomic rename so a crash mid-write can
// never leave a truncated cache file for a later run to load as valid.
package diskcache

import (
	"bytes"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/google/renameio/v2"
)

// schemaVersion is encoded alongside every cache entry. Bumping it
// invalidates every previously written cache file without needing to
// touch the filesystem: a version mismatch is treated as a miss.
const schemaVersion = 1

// Cache is a content-hash-keyed, gob-encoded on-disk store.
type Cache struct {
	dir string
}

// New returns a Cache rooted at dir, creating it if necessary.
func New(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("diskcache: create cache dir %s: %w", dir, err)
	}
	return &Cache{dir: dir}, nil
}

// DefaultDir returns the cache directory under the user's XDG cache
// home, following adrg/xdg's resolution of $XDG_CACHE_HOME (falling
// back to the platform default).
func DefaultDir() string {
	return filepath.Join(xdg.CacheHome, "marc-copyright")
}

// envelope is the on-disk wrapper around every cached value: the
// schema version it was written with, and the content-hash key it
// belongs to. Both are checked on read so a stale or mismatched file
// is treated as a miss rather than returned as if valid.
type envelope struct {
	SchemaVersion int
	Key           string
	Payload       []byte
}

// Key derives a content-hash cache key from a set of strings that
// uniquely identify the cached computation's inputs (e.g. a reference
// file's path + mtime + the matcher config that will consume it).
func Key(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".cache")
}

// Store gob-encodes value and atomically writes it under key, via
// renameio so a concurrent or crashed writer never leaves a partial
// file visible to a reader.
func (c *Cache) Store(key string, value any) error {
	payload, err := gobEncode(value)
	if err != nil {
		return fmt.Errorf("diskcache: encode payload for key %s: %w", key, err)
	}

	pf, err := renameio.NewPendingFile(c.path(key), renameio.WithPermissions(0o644), renameio.WithExistingPermissions())
	if err != nil {
		return fmt.Errorf("diskcache: create pending file for key %s: %w", key, err)
	}
	defer pf.Cleanup()

	env := envelope{SchemaVersion: schemaVersion, Key: key, Payload: payload}
	if err := gob.NewEncoder(pf).Encode(env); err != nil {
		return fmt.Errorf("diskcache: write envelope for key %s: %w", key, err)
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("diskcache: commit cache file for key %s: %w", key, err)
	}
	return nil
}

// Load decodes the cached value for key into dest (a pointer), per
// the corruption-as-miss contract: any read, decode, version, or
// key-mismatch error is reported as a plain miss (ok=false, err=nil)
// rather than surfaced as a hard failure, since the cache always has a
// slow-path recomputation to fall back on.
func (c *Cache) Load(key string, dest any) (ok bool, err error) {
	f, openErr := os.Open(c.path(key))
	if openErr != nil {
		return false, nil
	}
	defer f.Close()

	var env envelope
	if decErr := gob.NewDecoder(f).Decode(&env); decErr != nil {
		return false, nil
	}
	if env.SchemaVersion != schemaVersion || env.Key != key {
		return false, nil
	}
	if decErr := gobDecode(env.Payload, dest); decErr != nil {
		return false, nil
	}
	return true, nil
}

// Invalidate removes the cache entry for key, used to force a
// refresh regardless of whether the entry would otherwise be valid.
func (c *Cache) Invalidate(key string) error {
	err := os.Remove(c.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("diskcache: invalidate key %s: %w", key, err)
	}
	return nil
}

func gobEncode(value any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gobDecode(data []byte, dest any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(dest)
}
