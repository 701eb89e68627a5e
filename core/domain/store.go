// ABOUTME: Store is the in-memory form of the persisted article collection
// ABOUTME: Keeps records ordered, indexes URLs for dedup, and sorts by publication date

package domain

import (
	"sort"
	"strings"
	"time"

	timeutil "github.com/xiajiun/article-scraping/pkg/utils/time"
)

// Store is an ordered collection of articles keyed by URL
type Store struct {
	records []Article
	urls    map[string]struct{}
}

// NewStore wraps existing records. Records are kept verbatim, including
// any duplicates a hand-edited file may already contain.
func NewStore(records []Article) *Store {
	s := &Store{
		records: make([]Article, 0, len(records)),
		urls:    make(map[string]struct{}, len(records)),
	}
	for _, r := range records {
		s.records = append(s.records, r)
		s.urls[r.URL] = struct{}{}
	}
	return s
}

// Contains reports whether a record with the given URL exists
func (s *Store) Contains(url string) bool {
	_, ok := s.urls[url]
	return ok
}

// Append adds the article unless its URL is already present.
func (s *Store) Append(a Article) bool {
	if s.Contains(a.URL) {
		return false
	}
	s.records = append(s.records, a)
	s.urls[a.URL] = struct{}{}
	return true
}

// Len returns the number of records
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns a copy of the records in their current order
func (s *Store) Records() []Article {
	out := make([]Article, len(s.records))
	copy(out, s.records)
	return out
}

// SortByDate orders records newest first. Parsed dates come first, then
// unparseable dates in descending string order, then UnknownDate. The sort
// is stable so equal keys keep their previous order.
func (s *Store) SortByDate() {
	sort.SliceStable(s.records, func(i, j int) bool {
		return DateAfter(s.records[i].PublicationDate, s.records[j].PublicationDate)
	})
}

// dateRank groups publication dates for ordering
type dateRank int

const (
	rankParsed dateRank = iota
	rankUnparsed
	rankUnknown
)

func rankDate(value string) (dateRank, time.Time) {
	value = strings.TrimSpace(value)
	if value == "" || value == UnknownDate {
		return rankUnknown, time.Time{}
	}
	if t := timeutil.ParseFlexibleTime(value); !t.IsZero() {
		return rankParsed, t
	}
	return rankUnparsed, time.Time{}
}

// DateAfter reports whether publication date a sorts before b in the
// store's descending order.
func DateAfter(a, b string) bool {
	ra, ta := rankDate(a)
	rb, tb := rankDate(b)
	if ra != rb {
		return ra < rb
	}
	switch ra {
	case rankParsed:
		return ta.After(tb)
	case rankUnparsed:
		return strings.TrimSpace(a) > strings.TrimSpace(b)
	default:
		return false
	}
}
