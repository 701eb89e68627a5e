// ABOUTME: Article fetcher signs in, loads the source page and reads one candidate article
// ABOUTME: Missing elements degrade single fields; only authentication failures are fatal

package fetcher

import (
	"context"
	"net/url"
	"strings"

	"github.com/xiajiun/article-scraping/core/config"
	"github.com/xiajiun/article-scraping/core/domain"
	apperrors "github.com/xiajiun/article-scraping/core/errors"
	"github.com/xiajiun/article-scraping/core/interfaces"
	"github.com/xiajiun/article-scraping/core/relevance"
	htmlutil "github.com/xiajiun/article-scraping/pkg/utils/html"
)

// ArticleFetcher discovers candidate articles on the configured source page
type ArticleFetcher struct {
	sessions interfaces.SessionProvider
	creds    domain.Credentials
	filter   *relevance.Filter
	cfg      config.ExtractionConfig
	logger   interfaces.Logger
}

// NewArticleFetcher creates an article fetcher
func NewArticleFetcher(sessions interfaces.SessionProvider, creds domain.Credentials, filter *relevance.Filter, cfg config.ExtractionConfig, logger interfaces.Logger) *ArticleFetcher {
	return &ArticleFetcher{
		sessions: sessions,
		creds:    creds,
		filter:   filter,
		cfg:      cfg,
		logger:   logger,
	}
}

// FetchCandidates returns the relevant candidates found on the source page,
// at most one per run. An AuthenticationError is returned as is; navigation
// failures are logged and produce no candidates.
func (f *ArticleFetcher) FetchCandidates(ctx context.Context) ([]domain.Article, error) {
	session, err := f.sessions.Open(ctx, f.creds)
	if err != nil {
		f.logger.Error("Login failed", map[string]interface{}{
			"error": err.Error(),
		})
		if apperrors.IsAuthentication(err) {
			return nil, err
		}
		return nil, &apperrors.AuthenticationError{Reason: "could not open session", Err: err}
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			f.logger.Warn("Failed to close browsing session", map[string]interface{}{
				"error": cerr.Error(),
			})
		}
	}()
	f.logger.Info("Login successful", nil)

	doc, err := session.Navigate(ctx, f.cfg.SourceURL)
	if err != nil {
		f.logger.Error("Failed to load source page", map[string]interface{}{
			"url":       f.cfg.SourceURL,
			"error":     err.Error(),
			"not_found": apperrors.IsNotFound(err),
			"timeout":   apperrors.IsTimeout(err),
		})
		return nil, nil
	}

	article, ok := f.extract(doc)
	if !ok {
		return nil, nil
	}

	f.logger.Info("Scraping link", map[string]interface{}{
		"url": article.URL,
	})

	if !f.filter.IsRelevant(article.Title, article.Subheading, article.SecondaryHeading) {
		f.logger.Info("Candidate headings match no keyword", map[string]interface{}{
			"url":   article.URL,
			"title": article.Title,
		})
		return nil, nil
	}

	return []domain.Article{article}, nil
}

// extract reads one article from doc. It reports false when the title or
// the URL is missing, since the record would have no identity.
func (f *ArticleFetcher) extract(doc interfaces.Document) (domain.Article, bool) {
	sel := f.cfg.Selectors

	title := f.title(doc)
	if title == "" {
		f.logger.Warn("Source page has no title", map[string]interface{}{
			"url":      doc.URL(),
			"selector": sel.Title,
		})
		return domain.Article{}, false
	}

	link := f.link(doc)
	if link == "" {
		f.logger.Warn("Source page has no article link", map[string]interface{}{
			"url":      doc.URL(),
			"selector": sel.Link,
		})
		return domain.Article{}, false
	}

	publicationDate := domain.UnknownDate
	if metadata, ok := doc.First(sel.Metadata); ok {
		publicationDate = ParsePublicationDate(metadata.Text())
	}

	article := domain.Article{
		PublicationDate: publicationDate,
		Title:           title,
		Subheading:      textOf(doc, sel.Subheading),
		Content:         textOf(doc, sel.Content),
		URL:             link,
	}

	if heading, ok := doc.First(sel.SecondaryHeading); ok {
		article.SecondaryHeading = heading.Text()
		for _, item := range heading.All(sel.SecondaryPoints) {
			article.SecondaryPoints = append(article.SecondaryPoints, item.Text())
		}
	}

	return article, true
}

func (f *ArticleFetcher) title(doc interfaces.Document) string {
	heading, ok := doc.First(f.cfg.Selectors.Title)
	if !ok {
		return ""
	}
	if f.cfg.Selectors.TitleAttr != "" {
		if attr, ok := heading.Attr(f.cfg.Selectors.TitleAttr); ok {
			if attr = htmlutil.StripHTML(attr); attr != "" {
				return attr
			}
		}
	}
	return heading.Text()
}

func (f *ArticleFetcher) link(doc interfaces.Document) string {
	anchor, ok := doc.First(f.cfg.Selectors.Link)
	if !ok {
		return ""
	}
	href, ok := anchor.Attr(f.cfg.Selectors.LinkAttr)
	href = strings.TrimSpace(href)
	if !ok || href == "" {
		return ""
	}
	return resolveURL(doc.URL(), href)
}

// resolveURL makes href absolute against the page it was found on. The
// href is returned unchanged when either value does not parse.
func resolveURL(base, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	baseURL, err := url.Parse(base)
	if err != nil || baseURL.Scheme == "" {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}

func textOf(node interfaces.Node, selector string) string {
	if el, ok := node.First(selector); ok {
		return el.Text()
	}
	return ""
}
