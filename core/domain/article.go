// ABOUTME: Article domain model is the unit of record in the article store
// ABOUTME: Provides the fixed column schema and row conversion used by tabular stores

package domain

import "strings"

// UnknownDate is stored when the publication date cannot be read from the page.
const UnknownDate = "Unknown"

// PointsDelimiter joins secondary heading points into a single column value.
const PointsDelimiter = " | "

// Column headers of the persisted store, in on-disk order.
const (
	ColumnDate               = "Date of article"
	ColumnTitle              = "Title"
	ColumnSubheading         = "Subheading"
	ColumnSecondaryHeading   = "H2"
	ColumnSecondaryPoints    = "H2 Points"
	ColumnContent            = "Content"
	ColumnURL                = "URL"
	ColumnExtractedSentences = "Extracted Sentences"
)

// Columns is the fixed schema of the store.
var Columns = []string{
	ColumnDate,
	ColumnTitle,
	ColumnSubheading,
	ColumnSecondaryHeading,
	ColumnSecondaryPoints,
	ColumnContent,
	ColumnURL,
	ColumnExtractedSentences,
}

// Article represents one published article, either a transient candidate
// or a persisted record.
type Article struct {
	// PublicationDate is free-form text taken from the page metadata
	PublicationDate string

	// Title is the article headline
	Title string

	// Subheading may be empty
	Subheading string

	// SecondaryHeading is the H2 text, may be empty
	SecondaryHeading string

	// SecondaryPoints are the list items nested in the secondary heading
	SecondaryPoints []string

	// Content is the body text extracted from the listing page
	Content string

	// URL is the deduplication key
	URL string

	// ExtractedSentences holds the keyword-matching sentences. Empty means
	// the article failed the relevance gate.
	ExtractedSentences string
}

// IsValid reports whether the article has the fields every record needs
func (a *Article) IsValid() bool {
	return strings.TrimSpace(a.Title) != "" && strings.TrimSpace(a.URL) != ""
}

// IsRelevant reports whether the article passed the relevance gate
func (a *Article) IsRelevant() bool {
	return a.ExtractedSentences != ""
}

// JoinedPoints renders SecondaryPoints as a single delimited string
func (a *Article) JoinedPoints() string {
	return strings.Join(a.SecondaryPoints, PointsDelimiter)
}

// Row flattens the article into column order.
func (a *Article) Row() []string {
	return []string{
		a.PublicationDate,
		a.Title,
		a.Subheading,
		a.SecondaryHeading,
		a.JoinedPoints(),
		a.Content,
		a.URL,
		a.ExtractedSentences,
	}
}

// ArticleFromRow builds an article from a row whose cells are laid out as
// described by header. Columns missing from header or row are left empty and
// unknown columns are ignored.
func ArticleFromRow(header, row []string) Article {
	cell := func(name string) string {
		for i, h := range header {
			if strings.TrimSpace(h) == name {
				if i < len(row) {
					return row[i]
				}
				return ""
			}
		}
		return ""
	}

	return Article{
		PublicationDate:    cell(ColumnDate),
		Title:              cell(ColumnTitle),
		Subheading:         cell(ColumnSubheading),
		SecondaryHeading:   cell(ColumnSecondaryHeading),
		SecondaryPoints:    SplitPoints(cell(ColumnSecondaryPoints)),
		Content:            cell(ColumnContent),
		URL:                cell(ColumnURL),
		ExtractedSentences: cell(ColumnExtractedSentences),
	}
}

// SplitPoints is the inverse of JoinedPoints. An empty value yields nil.
func SplitPoints(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, PointsDelimiter)
}
