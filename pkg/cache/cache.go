// Package cache provides an on-disk, LZ4-compressed, gob-encoded cache for
// project.Result, keyed by a caller-supplied content hash. It lets repeated
// analysis runs over an unchanged module set skip the walker entirely.
package cache

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pierrec/lz4/v4"

	"github.com/plexus-metrics/plexus/pkg/project"
)

// Cache stores project.Result values as LZ4-compressed gob blobs under dir,
// one file per key.
type Cache struct {
	dir string
}

// New returns a Cache rooted at dir. The directory is created on first Put.
func New(dir string) *Cache {
	return &Cache{dir: dir}
}

// Get returns the cached Result for key, or ok=false on a miss. A miss is
// not an error: a missing or corrupt entry is treated as absent so a
// cache failure never blocks analysis.
func (c *Cache) Get(key string) (result *project.Result, ok bool, err error) {
	f, err := os.Open(c.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("cache: open %s: %w", key, err)
	}
	defer f.Close()

	reader := lz4.NewReader(f)

	var r project.Result
	if err := gob.NewDecoder(reader).Decode(&r); err != nil {
		return nil, false, nil //nolint:nilerr // corrupt entry treated as a miss
	}

	return &r, true, nil
}

// Put stores result under key, overwriting any existing entry.
func (c *Cache) Put(key string, result *project.Result) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("cache: create dir: %w", err)
	}

	var buf bytes.Buffer

	writer := lz4.NewWriter(&buf)
	if err := gob.NewEncoder(writer).Encode(result); err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("cache: flush %s: %w", key, err)
	}

	tmp := c.path(key) + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("cache: write %s: %w", key, err)
	}

	if err := os.Rename(tmp, c.path(key)); err != nil {
		return fmt.Errorf("cache: commit %s: %w", key, err)
	}

	return nil
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".cache")
}
