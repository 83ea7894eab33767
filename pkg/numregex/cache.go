package numregex

import (
	"container/list"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/numregex/pkg/logger"
	"github.com/dmitrymomot/numregex/pkg/numformat"
)

type cacheKey struct {
	options Options
	profile string
}

type cacheEntry struct {
	key     cacheKey
	matcher *Matcher
}

// Cache memoizes compiled matchers by options and profile, evicting the
// least recently used entry once capacity is reached. It is safe for
// concurrent use. Failed builds are not cached.
type Cache struct {
	capacity int
	items    map[cacheKey]*list.Element
	eviction *list.List
	mu       sync.Mutex
	log      *slog.Logger

	hits   atomic.Uint64
	misses atomic.Uint64
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithCacheLogger sets the logger used for debug records on misses and
// evictions. Nil loggers are ignored.
func WithCacheLogger(l *slog.Logger) CacheOption {
	return func(c *Cache) {
		if l != nil {
			c.log = l
		}
	}
}

// NewCache creates a cache holding at most capacity matchers.
// The capacity must be positive, otherwise it panics.
func NewCache(capacity int, opts ...CacheOption) *Cache {
	if capacity <= 0 {
		panic("numregex: cache capacity must be positive")
	}
	c := &Cache{
		capacity: capacity,
		items:    make(map[cacheKey]*list.Element),
		eviction: list.New(),
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile returns the cached matcher for (p, o), compiling it on a miss.
func (c *Cache) Compile(p numformat.Profile, o Options) (*Matcher, error) {
	key := cacheKey{options: o, profile: p.Key()}
	if m, ok := c.get(key); ok {
		c.hits.Add(1)
		return m, nil
	}
	c.misses.Add(1)

	m, err := Compile(p, o)
	if err != nil {
		c.log.Debug("numregex: build failed", logger.Options(o), logger.Error(err))
		return nil, err
	}
	c.log.Debug("numregex: compiled pattern", logger.Options(o), logger.Pattern(m.String()))

	return c.put(key, m), nil
}

// Len returns the number of cached matchers.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Stats returns the hit and miss counters.
func (c *Cache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Clear removes all cached matchers.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[cacheKey]*list.Element)
	c.eviction.Init()
}

func (c *Cache) get(key cacheKey) (*Matcher, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*cacheEntry).matcher, true
	}
	return nil, false
}

// put stores m unless another goroutine stored the same key first, in which
// case the existing matcher wins.
func (c *Cache) put(key cacheKey, m *Matcher) *Matcher {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*cacheEntry).matcher
	}

	c.items[key] = c.eviction.PushFront(&cacheEntry{key: key, matcher: m})
	if c.eviction.Len() > c.capacity {
		c.evictOldest()
	}
	return m
}

// Must be called with lock held.
func (c *Cache) evictOldest() {
	elem := c.eviction.Back()
	if elem == nil {
		return
	}
	c.eviction.Remove(elem)
	entry := elem.Value.(*cacheEntry)
	delete(c.items, entry.key)
	c.log.Debug("numregex: evicted pattern", logger.Pattern(entry.matcher.String()))
}
