package decode

import (
	"context"
	"sync"

	"github.com/facetwall/facetwall/filesystem"
	"github.com/facetwall/facetwall/log"
	"github.com/metafates/gache"
)

// CachedProber remembers probe results on disk, keyed by path, size and modification time,
// so an edited file is probed again.
type CachedProber struct {
	Backend
	cache *gache.Cache[map[string]Dimensions]
	mu    sync.Mutex
}

// NewCachedProber wraps backend with a probe cache stored at path.
func NewCachedProber(backend Backend, path string) *CachedProber {
	return &CachedProber{
		Backend: backend,
		cache: gache.New[map[string]Dimensions](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

// Probe returns the cached dimensions of path, probing and storing them on a miss.
func (c *CachedProber) Probe(ctx context.Context, path string) (Dimensions, error) {
	key, err := filesystem.Fingerprint(path)
	if err != nil {
		return c.Backend.Probe(ctx, path)
	}

	if dims, ok := c.lookup(key); ok {
		return dims, nil
	}

	dims, err := c.Backend.Probe(ctx, path)
	if err != nil {
		return Dimensions{}, err
	}

	if err := c.store(key, dims); err != nil {
		log.Warnf("probe cache: %v", err)
	}
	return dims, nil
}

func (c *CachedProber) lookup(key string) (Dimensions, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, expired, err := c.cache.Get()
	if err != nil || expired || entries == nil {
		return Dimensions{}, false
	}

	dims, ok := entries[key]
	return dims, ok && dims.Valid()
}

func (c *CachedProber) store(key string, dims Dimensions) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, expired, err := c.cache.Get()
	if err != nil || expired || entries == nil {
		entries = make(map[string]Dimensions)
	}

	entries[key] = dims
	return c.cache.Set(entries)
}
