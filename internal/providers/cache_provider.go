package providers

import (
	"batlog/internal/structures"
	"sync"
	"unsafe"

	"github.com/coocood/freecache"
	"go.uber.org/atomic"
)

type CacheProviderInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	// Generation returns the current cache generation for an owner. Cached
	// entries embed the generation in their key, so bumping it via Invalidate
	// orphans every entry built for that owner.
	Generation(owner string) uint64
	Invalidate(owner string)
}

type CacheProvider struct {
	cache       *freecache.Cache
	ttl         int
	generations sync.Map // owner -> *atomic.Uint64
}

func NewCacheProvider(conf *structures.Config, logger Logger) CacheProviderInterface {
	if !conf.Cache.Enabled || conf.Cache.Size <= 0 {
		logger.Infof(TypeApp, "Cache disabled")
		return &noopCache{}
	}

	sizeBytes := conf.Cache.Size * 1024 * 1024
	ttl := max(int(conf.Cache.TTL.Seconds()), 1)

	logger.Infof(TypeApp, "Cache initialized: %dMB, TTL=%ds", conf.Cache.Size, ttl)

	return &CacheProvider{
		cache: freecache.NewCache(sizeBytes),
		ttl:   ttl,
	}
}

// unsafeStringToBytes converts string to []byte without allocation.
// Safe when the result is only read (not modified), which is the case
// for freecache — it copies keys internally.
func unsafeStringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func (c *CacheProvider) Get(key string) ([]byte, bool) {
	val, err := c.cache.Get(unsafeStringToBytes(key))
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *CacheProvider) Set(key string, value []byte) {
	_ = c.cache.Set(unsafeStringToBytes(key), value, c.ttl)
}

func (c *CacheProvider) generation(owner string) *atomic.Uint64 {
	if g, ok := c.generations.Load(owner); ok {
		return g.(*atomic.Uint64)
	}
	g, _ := c.generations.LoadOrStore(owner, atomic.NewUint64(0))
	return g.(*atomic.Uint64)
}

func (c *CacheProvider) Generation(owner string) uint64 {
	return c.generation(owner).Load()
}

func (c *CacheProvider) Invalidate(owner string) {
	c.generation(owner).Inc()
}

type noopCache struct{}

func (n *noopCache) Get(_ string) ([]byte, bool) { return nil, false }
func (n *noopCache) Set(_ string, _ []byte)      {}
func (n *noopCache) Generation(_ string) uint64  { return 0 }
func (n *noopCache) Invalidate(_ string)         {}
