// Package cache keeps recently used novel snapshots in memory so mutations do
// not reload the whole novel from storage.
package cache

import (
	"fmt"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"novel-annotator/internal/novel"
)

// DefaultSize is the number of novels kept when no size is configured.
const DefaultSize = 64

// Entry is a cached novel.
type Entry struct {
	Title    string
	Snapshot novel.Snapshot
	// Dirty is set when the snapshot is newer than what storage holds.
	Dirty bool
}

// Option configures a SnapshotCache.
type Option func(*SnapshotCache)

// WithEvictHook registers a callback for entries dropped from the cache.
func WithEvictHook(fn func(id string, e Entry)) Option {
	return func(c *SnapshotCache) {
		c.onEvict = fn
	}
}

// SnapshotCache is a size-bounded LRU of novel snapshots keyed by novel ID.
// Dirty entries are also pinned outside the LRU until marked clean, so
// eviction never loses a snapshot that storage does not hold yet. It is safe
// for concurrent use. Read-modify-write sequences on one ID (MarkDirty,
// MarkClean) must be serialized by the caller.
type SnapshotCache struct {
	lru     *lru.Cache[string, Entry]
	onEvict func(id string, e Entry)

	mu     sync.Mutex
	pinned map[string]Entry
}

// New creates a cache holding up to size clean novels.
func New(size int, opts ...Option) (*SnapshotCache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	c := &SnapshotCache{pinned: make(map[string]Entry)}
	for _, opt := range opts {
		opt(c)
	}

	l, err := lru.NewWithEvict(size, func(id string, e Entry) {
		if c.onEvict != nil {
			c.onEvict(id, e)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot cache: %w", err)
	}
	c.lru = l
	return c, nil
}

// Get returns the cached entry for a novel and marks it recently used. A
// dirty entry evicted from the LRU is restored from the pinned set.
func (c *SnapshotCache) Get(id string) (Entry, bool) {
	if e, ok := c.lru.Get(id); ok {
		return e, true
	}
	c.mu.Lock()
	e, ok := c.pinned[id]
	c.mu.Unlock()
	if ok {
		c.lru.Add(id, e)
	}
	return e, ok
}

// Put stores an entry, replacing any previous one.
func (c *SnapshotCache) Put(id string, e Entry) {
	c.pin(id, e)
	c.lru.Add(id, e)
}

// MarkDirty flags a cached novel as not yet persisted.
func (c *SnapshotCache) MarkDirty(id string) {
	c.setDirty(id, true)
}

// MarkClean flags a cached novel as matching storage.
func (c *SnapshotCache) MarkClean(id string) {
	c.setDirty(id, false)
}

func (c *SnapshotCache) setDirty(id string, dirty bool) {
	e, ok := c.lru.Peek(id)
	if !ok {
		c.mu.Lock()
		e, ok = c.pinned[id]
		c.mu.Unlock()
	}
	if !ok || e.Dirty == dirty {
		return
	}
	e.Dirty = dirty
	c.Put(id, e)
}

// pin keeps dirty entries in the pinned set and releases clean ones.
func (c *SnapshotCache) pin(id string, e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e.Dirty {
		c.pinned[id] = e
	} else {
		delete(c.pinned, id)
	}
}

// Remove drops a novel from the cache, including unsaved changes.
func (c *SnapshotCache) Remove(id string) {
	c.mu.Lock()
	delete(c.pinned, id)
	c.mu.Unlock()
	c.lru.Remove(id)
}

// DirtyIDs lists novels whose latest snapshot has not been persisted, sorted.
func (c *SnapshotCache) DirtyIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]string, 0, len(c.pinned))
	for id := range c.pinned {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of novels held, counting dirty ones evicted from the LRU.
func (c *SnapshotCache) Len() int {
	n := c.lru.Len()
	c.mu.Lock()
	defer c.mu.Unlock()
	for id := range c.pinned {
		if !c.lru.Contains(id) {
			n++
		}
	}
	return n
}
