// ABOUTME: Article store factory selecting the file format by extension
// ABOUTME: .xlsx uses the spreadsheet store; .db, .sqlite and .sqlite3 use SQLite

package store

import (
	"path/filepath"
	"strings"

	apperrors "github.com/xiajiun/article-scraping/core/errors"
	"github.com/xiajiun/article-scraping/core/interfaces"
	"github.com/xiajiun/article-scraping/infrastructure/store/excel"
	"github.com/xiajiun/article-scraping/infrastructure/store/sqlite"
)

// New returns the store for path based on its extension
func New(path string) (interfaces.ArticleStore, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return excel.NewStore(path), nil
	case ".db", ".sqlite", ".sqlite3":
		return sqlite.NewStore(path), nil
	default:
		return nil, &apperrors.ValidationError{
			Field:   "OUTPUT_PATH",
			Message: "unsupported store extension " + filepath.Ext(path) + " (use .xlsx, .db, .sqlite or .sqlite3)",
		}
	}
}
