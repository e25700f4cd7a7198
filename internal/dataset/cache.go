package dataset

import (
	"context"
	"time"

	"github.com/jwseo/maechuldash-backend/pkg/logger"
	"github.com/jwseo/maechuldash-backend/pkg/redis"
)

// CachingSource wraps a Source with the Redis payload cache. Cache errors
// degrade to a direct fetch; a nil Redis client makes this a pass-through.
type CachingSource struct {
	inner Source
	ttl   time.Duration
}

func NewCachingSource(inner Source, ttl time.Duration) *CachingSource {
	return &CachingSource{inner: inner, ttl: ttl}
}

func (c *CachingSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if data, err := redis.GetCachedPayload(ctx, name); err == nil && data != nil {
		logger.Debug("Payload cache hit", map[string]interface{}{"name": name})
		return data, nil
	}

	data, err := c.inner.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := redis.CachePayload(ctx, name, data, c.ttl); err == nil {
		logger.Debug("Payload cached", map[string]interface{}{"name": name})
	}
	return data, nil
}

// Evict drops the cached copies of the given documents, used before a
// forced refresh.
func (c *CachingSource) Evict(ctx context.Context, names []string) {
	for _, name := range names {
		if err := redis.DropPayload(ctx, name); err != nil {
			logger.Warn("Failed to evict cached payload", map[string]interface{}{
				"name":  name,
				"error": err.Error(),
			})
		}
	}
}
