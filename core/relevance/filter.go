// ABOUTME: Keyword relevance filter for candidate articles
// ABOUTME: Matches keywords as case-insensitive substrings and extracts matching sentences

package relevance

import "strings"

// Delimiter joins extracted sentences
const Delimiter = " | "

// sentenceSeparator splits body text into sentence units
const sentenceSeparator = "."

// Filter holds a normalized keyword set. Matching is substring based, so
// "AI" also matches "said"; this is intended.
type Filter struct {
	keywords []string
}

// NewFilter trims keywords, drops empty ones and removes case-insensitive
// duplicates while keeping the first spelling's position.
func NewFilter(keywords []string) *Filter {
	seen := make(map[string]struct{}, len(keywords))
	normalized := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		normalized = append(normalized, k)
	}
	return &Filter{keywords: normalized}
}

// Keywords returns the normalized keyword set
func (f *Filter) Keywords() []string {
	out := make([]string, len(f.keywords))
	copy(out, f.keywords)
	return out
}

// IsRelevant reports whether any keyword occurs in any field
func (f *Filter) IsRelevant(fields ...string) bool {
	for _, field := range fields {
		if f.matches(field) {
			return true
		}
	}
	return false
}

// ExtractSentences splits content on periods and returns the trimmed units
// that contain a keyword, joined with Delimiter. It returns "" when nothing
// matches.
func (f *Filter) ExtractSentences(content string) string {
	if content == "" {
		return ""
	}

	var matched []string
	for _, unit := range strings.Split(content, sentenceSeparator) {
		if f.matches(unit) {
			matched = append(matched, strings.TrimSpace(unit))
		}
	}
	return strings.Join(matched, Delimiter)
}

func (f *Filter) matches(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, k := range f.keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// IsRelevant is a one-off form of Filter.IsRelevant
func IsRelevant(fields []string, keywords []string) bool {
	return NewFilter(keywords).IsRelevant(fields...)
}

// ExtractSentences is a one-off form of Filter.ExtractSentences
func ExtractSentences(content string, keywords []string) string {
	return NewFilter(keywords).ExtractSentences(content)
}
