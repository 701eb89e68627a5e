// ABOUTME: Extraction configuration for the article fetcher
// ABOUTME: Holds the target page and the element selectors used to read one article

package config

// Selectors identify the elements of the article page
type Selectors struct {
	// Title is the heading element; TitleAttr on it is preferred over its text
	Title     string
	TitleAttr string

	// Metadata holds "a | b | date" style publication details
	Metadata string

	Subheading       string
	SecondaryHeading string

	// SecondaryPoints is searched inside the secondary heading element
	SecondaryPoints string

	Content string

	// Link is the first hyperlink, whose href is the candidate URL
	Link     string
	LinkAttr string
}

// ExtractionConfig controls what the article fetcher loads and how it reads it
type ExtractionConfig struct {
	// SourceURL is the listing page inspected on every run
	SourceURL string

	// Selectors locate the article fields on SourceURL
	Selectors Selectors
}

// DefaultSelectors matches the layout of the source's article pages
func DefaultSelectors() Selectors {
	return Selectors{
		Title:            "h1",
		TitleAttr:        "data-en-heading",
		Metadata:         ".p-xsmall",
		Subheading:       ".h3",
		SecondaryHeading: "h2",
		SecondaryPoints:  "li",
		Content:          ".article-text",
		Link:             "a[href]",
		LinkAttr:         "href",
	}
}

// DefaultExtractionConfig returns the configuration used when no options are given
func DefaultExtractionConfig() ExtractionConfig {
	return ExtractionConfig{
		SourceURL: "https://www.gartner.com/en/",
		Selectors: DefaultSelectors(),
	}
}

// ExtractionOption is a functional option for configuring extraction
type ExtractionOption func(*ExtractionConfig)

// WithSourceURL sets the page to inspect
func WithSourceURL(url string) ExtractionOption {
	return func(c *ExtractionConfig) {
		c.SourceURL = url
	}
}

// WithSelectors replaces every selector
func WithSelectors(s Selectors) ExtractionOption {
	return func(c *ExtractionConfig) {
		c.Selectors = s
	}
}

// WithContentSelector changes only the body content selector
func WithContentSelector(selector string) ExtractionOption {
	return func(c *ExtractionConfig) {
		c.Selectors.Content = selector
	}
}

// NewExtractionConfig creates an extraction configuration with the given options
func NewExtractionConfig(opts ...ExtractionOption) ExtractionConfig {
	config := DefaultExtractionConfig()

	for _, opt := range opts {
		opt(&config)
	}

	return config
}
