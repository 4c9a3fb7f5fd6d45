package content

import (
	"context"
	"encoding/json"
	"time"

	"github.com/FaizBuildsStuff/matera-media/internal/common/database"
	"github.com/FaizBuildsStuff/matera-media/internal/common/logger"
	"github.com/FaizBuildsStuff/matera-media/internal/common/metrics"

	"github.com/redis/go-redis/v9"
)

// CachedPages wraps a PageFetcher with a redis cache. Cache failures are
// logged and fall through to the store: the cache can never make a page
// unavailable. Not-found results are cached too (as a JSON null) so a
// missing document does not hammer the store.
type CachedPages struct {
	inner  PageFetcher
	redis  *database.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedPages(inner PageFetcher, redisClient *database.RedisClient, ttl time.Duration, log logger.Logger) *CachedPages {
	return &CachedPages{
		inner:  inner,
		redis:  redisClient,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "pageCache"}),
	}
}

func cacheKey(slug string) string {
	return "page:" + slug
}

func (c *CachedPages) FetchPage(ctx context.Context, slug string) (*Page, error) {
	cached, err := c.redis.Get(ctx, cacheKey(slug))
	if err == nil {
		var page *Page
		if unmarshalErr := json.Unmarshal([]byte(cached), &page); unmarshalErr == nil {
			metrics.ContentFetches.WithLabelValues(metrics.FetchCacheHit).Inc()
			return page, nil
		}
		// Corrupt entry: drop it and fall through to the store.
		_ = c.redis.Del(ctx, cacheKey(slug))
	} else if err != redis.Nil {
		c.logger.Warn("page cache read failed", map[string]interface{}{
			"slug":  slug,
			"error": err.Error(),
		})
	}

	page, err := c.inner.FetchPage(ctx, slug)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(page)
	if err == nil {
		if setErr := c.redis.Set(ctx, cacheKey(slug), string(encoded), c.ttl); setErr != nil {
			c.logger.Warn("page cache write failed", map[string]interface{}{
				"slug":  slug,
				"error": setErr.Error(),
			})
		}
	}

	return page, nil
}
