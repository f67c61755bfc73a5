package port

import (
	"context"
	"time"
)

// CacheRepository abstracts the list cache. Get returns (nil, nil) on a
// miss so callers never branch on adapter-specific sentinel errors.
type CacheRepository interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Close() error
}
