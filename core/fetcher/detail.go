// ABOUTME: Detail fetcher retrieves full article text for relevance extraction
// ABOUTME: Fails open to an empty body so a bad page drops one candidate, not the run

package fetcher

import (
	"context"
	"net/http"

	"github.com/xiajiun/article-scraping/core/contentcache"
	apperrors "github.com/xiajiun/article-scraping/core/errors"
	"github.com/xiajiun/article-scraping/core/interfaces"
)

// DetailFetcher downloads article pages through the run's content cache
type DetailFetcher struct {
	client    interfaces.HTTPClient
	cache     *contentcache.Cache
	extractor TextExtractor
	logger    interfaces.Logger
}

// NewDetailFetcher creates a detail fetcher. A nil extractor means visible text.
func NewDetailFetcher(client interfaces.HTTPClient, cache *contentcache.Cache, extractor TextExtractor, logger interfaces.Logger) *DetailFetcher {
	if extractor == nil {
		extractor = VisibleTextExtractor{}
	}
	return &DetailFetcher{
		client:    client,
		cache:     cache,
		extractor: extractor,
		logger:    logger,
	}
}

// GetFullContent returns the page text for url, or "" when the page cannot
// be fetched. Failures are logged and never returned.
func (d *DetailFetcher) GetFullContent(ctx context.Context, url string) string {
	text, err := d.cache.GetOrFetch(ctx, url, d.fetch)
	if err != nil {
		d.logger.Error("Failed to retrieve article page", map[string]interface{}{
			"url":         url,
			"status_code": apperrors.StatusCode(err),
			"error":       err.Error(),
		})
		return ""
	}
	return text
}

func (d *DetailFetcher) fetch(ctx context.Context, url string) (string, error) {
	resp, err := d.client.Get(ctx, url)
	if err != nil {
		return "", &apperrors.FetchError{URL: url, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return "", &apperrors.FetchError{URL: url, StatusCode: resp.StatusCode()}
	}

	text, err := d.extractor.Extract(url, resp.Body())
	if err != nil {
		return "", &apperrors.FetchError{URL: url, StatusCode: resp.StatusCode(), Err: err}
	}

	d.logger.Debug("Fetched article page", map[string]interface{}{
		"url":   url,
		"chars": len(text),
	})
	return text, nil
}
