// ABOUTME: Publication date parsing for the source page metadata line
// ABOUTME: Reads the third pipe-separated field and falls back to Unknown

package fetcher

import (
	"strings"

	"github.com/xiajiun/article-scraping/core/domain"
)

// metadataSeparator splits the "type | author | date" metadata line
const metadataSeparator = "|"

// publicationDateField is the zero-based field holding the date
const publicationDateField = 2

// ParsePublicationDate reads the publication date from a metadata line such
// as "Article | Jane Doe | October 3, 2024". It returns the trimmed third
// field, or domain.UnknownDate when there are fewer than three fields or the
// third one is blank. The value is not validated as a date.
func ParsePublicationDate(metadata string) string {
	parts := strings.Split(metadata, metadataSeparator)
	if len(parts) <= publicationDateField {
		return domain.UnknownDate
	}
	date := strings.TrimSpace(parts[publicationDateField])
	if date == "" {
		return domain.UnknownDate
	}
	return date
}
