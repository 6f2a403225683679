package boardcache

import (
	"context"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	gocachestore "github.com/eko/gocache/store/go_cache/v4"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

// Cache is a read-through TTL cache over an in-process store. Concurrent
// misses for the same key each fetch independently and the last write wins,
// which is safe because entries are only ever replaced whole.
type Cache[T any] struct {
	name  string
	cache *cache.Cache[T]
}

func New[T any](name string, ttl time.Duration) *Cache[T] {
	memoryStore := gocachestore.NewGoCache(
		gocache.New(ttl, 10*time.Minute),
		store.WithExpiration(ttl),
	)

	return &Cache[T]{
		name:  name,
		cache: cache.New[T](memoryStore),
	}
}

// Get returns the live entry for key. On a miss or an expired entry it calls
// fetch, stores the result stamped with the cache TTL, and returns it.
func (c *Cache[T]) Get(key string, fetch func(string) T) T {
	value, err := c.cache.Get(context.Background(), key)
	if err == nil {
		cacheHits.WithLabelValues(c.name).Inc()

		return value
	}

	cacheMisses.WithLabelValues(c.name).Inc()

	value = fetch(key)

	if err := c.cache.Set(context.Background(), key, value); err != nil {
		log.Debug().Err(err).Str("cache", c.name).Str("key", key).Msg("Failed to store cache entry")
	}

	return value
}
