// Package core contains the ingestion logic of the article scraper.
// It does not depend on any browser, HTTP library, cache server or file
// format; those arrive through the contracts in core/interfaces.
//
// The core package is organized into several sub-packages:
//
// - domain: Article records, the Store collection and its date ordering
// - relevance: Keyword matching and sentence extraction
// - contentcache: Run-scoped memo of article page text keyed by URL
// - fetcher: Candidate discovery from the source page and detail page text
// - reconciler: One load, discover, enrich, merge and persist pass
// - config: Page selectors as functional options
// - errors: Typed errors separating fatal failures from contained ones
// - interfaces: Contracts for cache, HTTP, browsing sessions, storage and logging
//
// # Usage Example
//
//	filter := relevance.NewFilter([]string{"radiology", "PACS"})
//	cache := contentcache.New(deps.Cache, runID, deps.Logger)
//
//	articles := fetcher.NewArticleFetcher(deps.Sessions, creds, filter,
//	    config.NewExtractionConfig(config.WithSourceURL(sourceURL)), deps.Logger)
//	details := fetcher.NewDetailFetcher(deps.HTTPClient, cache, nil, deps.Logger)
//
//	result, err := reconciler.New(deps.Store, articles, details, filter, deps.Logger).Run(ctx)
//	if err != nil {
//	    // authentication, store load and save failures end the run
//	}
//	fmt.Println(result) // "1 records added"
package core
