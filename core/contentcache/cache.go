// ABOUTME: Run-scoped content cache mapping article URLs to fetched text
// ABOUTME: Calls the fetch function at most once per URL and never caches failures

package contentcache

import (
	"context"
	"errors"

	apperrors "github.com/xiajiun/article-scraping/core/errors"
	"github.com/xiajiun/article-scraping/core/interfaces"
)

const keyPrefix = "content"

// FetchFunc retrieves the text for a URL on a cache miss
type FetchFunc func(ctx context.Context, url string) (string, error)

// Stats counts cache activity for one run
type Stats struct {
	Hits    int
	Misses  int
	Fetches int
	Failed  int
}

// Cache is a URL to text cache whose entries live for one run. Entries are
// written without a TTL under a run namespace and removed by Clear.
type Cache struct {
	backend   interfaces.Cache
	namespace string
	logger    interfaces.Logger
	keys      []string
	stats     Stats
}

// New creates a cache over backend. namespace separates runs that share a
// backend such as Redis.
func New(backend interfaces.Cache, namespace string, logger interfaces.Logger) *Cache {
	return &Cache{
		backend:   backend,
		namespace: namespace,
		logger:    logger,
	}
}

// GetOrFetch returns the cached text for url, or calls fetch and caches its
// result. Fetch errors are returned to the caller and leave no entry, so the
// next lookup tries again.
func (c *Cache) GetOrFetch(ctx context.Context, url string, fetch FetchFunc) (string, error) {
	key := c.key(url)

	data, err := c.backend.Get(ctx, key)
	switch {
	case err == nil:
		c.stats.Hits++
		c.logger.Info("Using cached data", map[string]interface{}{
			"url": url,
		})
		return string(data), nil
	case !errors.Is(err, apperrors.ErrCacheMiss):
		c.logger.Warn("Cache read failed, fetching instead", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
	}
	c.stats.Misses++

	c.stats.Fetches++
	text, err := fetch(ctx, url)
	if err != nil {
		c.stats.Failed++
		return "", err
	}

	if err := c.backend.Set(ctx, key, []byte(text), 0); err != nil {
		c.logger.Warn("Failed to cache fetched content", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
		return text, nil
	}
	c.keys = append(c.keys, key)

	return text, nil
}

// Stats returns the counters collected so far
func (c *Cache) Stats() Stats {
	return c.stats
}

// Clear removes every entry this cache wrote
func (c *Cache) Clear(ctx context.Context) error {
	var errs []error
	for _, key := range c.keys {
		if err := c.backend.Delete(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	c.keys = nil
	return errors.Join(errs...)
}

func (c *Cache) key(url string) string {
	if c.namespace == "" {
		return keyPrefix + ":" + url
	}
	return keyPrefix + ":" + c.namespace + ":" + url
}
