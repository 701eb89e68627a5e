// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Groups the infrastructure a run needs so the CLI wires it in one place

package interfaces

// Dependencies holds all external dependencies required by a run
type Dependencies struct {
	// Cache backs the run-scoped content cache
	Cache Cache

	// HTTPClient fetches article detail pages
	HTTPClient HTTPClient

	// Sessions opens authenticated browsing sessions
	Sessions SessionProvider

	// Store loads and saves the article collection
	Store ArticleStore

	// Logger provides structured logging
	Logger Logger
}
