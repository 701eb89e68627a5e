// ABOUTME: Storage interfaces for persisting articles
// ABOUTME: Defines the tabular load/save contract used by the reconciler

package interfaces

import (
	"context"

	"github.com/xiajiun/article-scraping/core/domain"
)

// ArticleStore persists the article collection as flat rows in a file
type ArticleStore interface {
	// Load reads every record in file order. A missing file is an empty
	// store, not an error. Any other failure is a StoreLoadError.
	Load(ctx context.Context) ([]domain.Article, error)

	// Save replaces the file contents with records, in the given order.
	Save(ctx context.Context, records []domain.Article) error

	// Path returns the location of the backing file
	Path() string
}
