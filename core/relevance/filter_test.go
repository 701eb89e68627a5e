package relevance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var medicalKeywords = []string{"medical AI", "AI", "pathology", "mammo", "X-ray", "PACS"}

func TestNewFilter_NormalizesKeywords(t *testing.T) {
	f := NewFilter([]string{" AI ", "ai", "", "  ", "Pathology", "pathology"})

	assert.Equal(t, []string{"ai", "pathology"}, f.Keywords())
}

func TestFilter_IsRelevant(t *testing.T) {
	f := NewFilter(medicalKeywords)

	tests := []struct {
		name   string
		fields []string
		want   bool
	}{
		{"title match", []string{"New PATHOLOGY workflow", "", ""}, true},
		{"subheading match", []string{"Widgets", "Chest x-ray triage", ""}, true},
		{"secondary heading match", []string{"Widgets", "", "Mammography screening"}, true},
		{"no match", []string{"Quarterly results", "Finance", "Outlook"}, false},
		{"substring inside word", []string{"He said so"}, true},
		{"no fields", nil, false},
		{"empty fields", []string{"", ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.IsRelevant(tt.fields...))
		})
	}
}

func TestFilter_ExtractSentences(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		keywords []string
		want     string
	}{
		{
			name:     "single matching sentence",
			content:  "This is about pathology. This is unrelated.",
			keywords: []string{"pathology"},
			want:     "This is about pathology",
		},
		{
			name:     "several matches joined",
			content:  " PACS upgrade done.Nothing here. New mammo units arrive . ",
			keywords: medicalKeywords,
			want:     "PACS upgrade done | New mammo units arrive",
		},
		{
			name:     "sentence with several keywords kept once",
			content:  "Medical AI improves pathology. Other.",
			keywords: medicalKeywords,
			want:     "Medical AI improves pathology",
		},
		{
			name:     "empty content",
			content:  "",
			keywords: medicalKeywords,
			want:     "",
		},
		{
			name:     "no matches",
			content:  "Nothing relevant. Still nothing.",
			keywords: []string{"radiology"},
			want:     "",
		},
		{
			name:     "case insensitive",
			content:  "x-RAY machines are portable",
			keywords: []string{"X-ray"},
			want:     "x-RAY machines are portable",
		},
		{
			name:     "no keywords",
			content:  "Anything at all.",
			keywords: nil,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSentences(tt.content, tt.keywords))
		})
	}
}

func TestIsRelevant_PackageHelper(t *testing.T) {
	assert.True(t, IsRelevant([]string{"AI pathology tool"}, []string{"pathology"}))
	assert.False(t, IsRelevant([]string{"New widget"}, []string{"pathology"}))
}
