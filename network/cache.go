// SPDX-License-Identifier: MIT

package network

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/prophnet/logging"
)

// Cache keeps decoded graphs keyed by file path, load mode and a hash of the
// file content, so an edited file is never served stale. Concurrent loads of
// the same key are collapsed into one decode. Cached graphs are immutable and
// shared between callers.
type Cache struct {
	logger logging.Logger

	mu     sync.RWMutex
	graphs map[string]*Graph
	group  singleflight.Group
}

// NewCache returns an empty Cache logging to l (nil discards).
func NewCache(l logging.Logger) *Cache {
	return &Cache{
		logger: logging.OrNop(l),
		graphs: make(map[string]*Graph),
	}
}

// CacheKey derives the cache key for already-read file content.
func CacheKey(path string, memSaving bool, data []byte) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return fmt.Sprintf("%s|%t|%016x", path, memSaving, xxhash.Sum64(data))
}

// Load has the same contract as FileLoader.Load. The file is always read so
// its fingerprint can be checked; decoding happens only on a cache miss.
func (c *Cache) Load(ctx context.Context, basePath, ref string, memSaving bool) (*Graph, error) {
	path := ResolvePath(basePath, ref)
	data, err := readFile(ctx, path)
	if err != nil {
		return nil, err
	}
	key := CacheKey(path, memSaving, data)

	c.mu.RLock()
	if g, ok := c.graphs[key]; ok {
		c.mu.RUnlock()
		c.logger.Debug("network cache hit", "path", path)
		return g, nil
	}
	c.mu.RUnlock()

	v, err, shared := c.group.Do(key, func() (any, error) {
		c.mu.RLock()
		if g, ok := c.graphs[key]; ok {
			c.mu.RUnlock()
			return g, nil
		}
		c.mu.RUnlock()

		g, err := Decode(data, memSaving)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		c.mu.Lock()
		c.graphs[key] = g
		c.mu.Unlock()
		return g, nil
	})
	if err != nil {
		return nil, err
	}
	c.logger.Debug("network cache miss", "path", path, "shared", shared)
	return v.(*Graph), nil
}

// Len reports the number of cached graphs.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.graphs)
}

// Purge drops every cached graph.
func (c *Cache) Purge() {
	c.mu.Lock()
	c.graphs = make(map[string]*Graph)
	c.mu.Unlock()
}
