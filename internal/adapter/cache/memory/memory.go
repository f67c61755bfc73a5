package memory

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"todoapi/internal/core/port"
)

type memoryRepository struct {
	cache *gocache.Cache
}

// New returns an in-process cache. The default when no REDIS_URL is set,
// and the adapter used by tests.
func New() port.CacheRepository {
	return &memoryRepository{
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (c *memoryRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.cache.Set(key, value, ttl)
	return nil
}

func (c *memoryRepository) Get(ctx context.Context, key string) ([]byte, error) {
	value, found := c.cache.Get(key)

	if !found {
		return nil, nil
	}

	data, ok := value.([]byte)

	if !ok {
		return nil, nil
	}

	return data, nil
}

func (c *memoryRepository) Delete(ctx context.Context, key string) error {
	c.cache.Delete(key)
	return nil
}

func (c *memoryRepository) DeleteByPrefix(ctx context.Context, prefix string) error {
	for key := range c.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			c.cache.Delete(key)
		}
	}

	return nil
}

func (c *memoryRepository) Close() error {
	c.cache.Flush()
	return nil
}
