// ABOUTME: Text extraction strategies for article detail pages
// ABOUTME: Offers whole-page visible text and readability-based main-content text

package fetcher

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"

	htmlutil "github.com/xiajiun/article-scraping/pkg/utils/html"
)

// Extractor names accepted by NewTextExtractor
const (
	ExtractorText        = "text"
	ExtractorReadability = "readability"
)

// TextExtractor turns a fetched page into plain text
type TextExtractor interface {
	Extract(pageURL string, body io.Reader) (string, error)
}

// NewTextExtractor returns the extractor registered under name
func NewTextExtractor(name string) (TextExtractor, error) {
	switch strings.ToLower(name) {
	case "", ExtractorText:
		return VisibleTextExtractor{}, nil
	case ExtractorReadability:
		return ReadabilityExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown content extractor %q", name)
	}
}

// VisibleTextExtractor returns every visible text node of the page
type VisibleTextExtractor struct{}

// Extract implements TextExtractor
func (VisibleTextExtractor) Extract(pageURL string, body io.Reader) (string, error) {
	return htmlutil.VisibleText(body)
}

// ReadabilityExtractor keeps only the main article text
type ReadabilityExtractor struct{}

// Extract implements TextExtractor
func (ReadabilityExtractor) Extract(pageURL string, body io.Reader) (string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("invalid page URL: %w", err)
	}

	article, err := readability.FromReader(body, parsed)
	if err != nil {
		return "", fmt.Errorf("readability extraction failed: %w", err)
	}

	return htmlutil.CollapseWhitespace(article.TextContent), nil
}
