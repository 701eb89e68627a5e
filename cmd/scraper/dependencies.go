// ABOUTME: Builds the infrastructure a run needs from configuration
// ABOUTME: Falls back to the in-memory cache when Redis is unreachable

package main

import (
	"github.com/xiajiun/article-scraping/core/interfaces"
	"github.com/xiajiun/article-scraping/infrastructure/browser"
	"github.com/xiajiun/article-scraping/infrastructure/cache/memory"
	"github.com/xiajiun/article-scraping/infrastructure/cache/redis"
	stdhttp "github.com/xiajiun/article-scraping/infrastructure/http/standard"
	"github.com/xiajiun/article-scraping/infrastructure/store"
	appconfig "github.com/xiajiun/article-scraping/pkg/config"
)

// buildDependencies wires the configured backends. The returned cleanup
// releases connections and is safe to call once the run is over.
func buildDependencies(cfg *appconfig.Config, logger interfaces.Logger) (interfaces.Dependencies, func(), error) {
	articleStore, err := store.New(cfg.OutputPath)
	if err != nil {
		return interfaces.Dependencies{}, func() {}, err
	}

	cache, closeCache := buildCache(cfg, logger)

	sessions := browser.NewProvider(browser.Config{
		SignInURL:      cfg.Source.SignInURL,
		UserAgent:      cfg.UserAgent,
		LoginTimeout:   cfg.Source.LoginTimeout,
		ElementTimeout: cfg.Source.ElementTimeout,
		Login:          browser.DefaultLoginSelectors(),
	}, logger)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: stdhttp.NewStandardHTTPClient(cfg.HTTPTimeout, cfg.UserAgent),
		Sessions:   sessions,
		Store:      articleStore,
		Logger:     logger,
	}
	return deps, closeCache, nil
}

func buildCache(cfg *appconfig.Config, logger interfaces.Logger) (interfaces.Cache, func()) {
	if cfg.Cache.Type == "redis" {
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
			return redisCache, func() { redisCache.Close() }
		}
	}

	logger.Debug("Using memory cache", nil)
	return memory.NewMemoryCache(), func() {}
}
