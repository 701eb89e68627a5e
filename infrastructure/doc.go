// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - browser: Colly sessions that sign in with a form post, goquery documents
// - cache/memory: In-memory cache on patrickmn/go-cache
// - cache/redis: Redis-based cache for sharing page text between processes
// - http/standard: net/http client with a fixed User-Agent and retry logic
// - logger/structured: logrus logger with optional lumberjack file rotation
// - store: Article store factory; store/excel (excelize) and store/sqlite (go-sqlite3)
//
// # Cache Implementations
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 0)
//	value, err := cache.Get(ctx, "key") // errors.ErrCacheMiss when absent
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{Address: "localhost:6379"})
//
// # Browsing Sessions
//
//	provider := browser.NewProvider(browser.Config{
//	    SignInURL: "https://www.gartner.com/account/signin",
//	    UserAgent: config.DefaultUserAgent,
//	}, logger)
//	session, err := provider.Open(ctx, creds)
//	defer session.Close()
//	doc, err := session.Navigate(ctx, "https://www.gartner.com/en/")
//
// # Article Stores
//
//	s, err := store.New("gartner_articles.xlsx") // or articles.db
//	records, err := s.Load(ctx)
//	err = s.Save(ctx, records)
package infrastructure
