package html

import (
	"strings"
	"testing"
)

func TestVisibleText(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{
			name:   "paragraphs joined by spaces",
			markup: "<html><body><p>First   sentence.</p>\n<p>Second\tsentence.</p></body></html>",
			want:   "First sentence. Second sentence.",
		},
		{
			name:   "scripts and styles skipped",
			markup: "<html><head><style>p{}</style></head><body><script>var x = 1;</script><noscript>Enable JS</noscript><p>Body</p></body></html>",
			want:   "Body",
		},
		{
			name:   "page title kept",
			markup: "<html><head><title>Radiology outlook</title><meta name=\"x\" content=\"y\"></head><body><p>Body</p></body></html>",
			want:   "Radiology outlook Body",
		},
		{
			name:   "entities decoded",
			markup: "<p>Fish &amp; chips&nbsp;today</p>",
			want:   "Fish & chips today",
		},
		{
			name:   "empty document",
			markup: "",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VisibleText(strings.NewReader(tt.markup))
			if err != nil {
				t.Fatalf("VisibleText() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("VisibleText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripHTML(t *testing.T) {
	got := StripHTML("<div>Medical <b>AI</b> news</div>")
	if got != "Medical AI news" {
		t.Errorf("StripHTML() = %q", got)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	if got := CollapseWhitespace("  a \n\n b\t c "); got != "a b c" {
		t.Errorf("CollapseWhitespace() = %q", got)
	}
}
